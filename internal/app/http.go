package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tympollack/keep-rocket-league/internal/account"
	"github.com/tympollack/keep-rocket-league/internal/auth/handler"
	"github.com/tympollack/keep-rocket-league/internal/auth/provider"
	"github.com/tympollack/keep-rocket-league/internal/auth/provider/steam"
	"github.com/tympollack/keep-rocket-league/internal/config"
	"github.com/tympollack/keep-rocket-league/internal/middleware"
	"github.com/tympollack/keep-rocket-league/internal/mongo"
	"github.com/tympollack/keep-rocket-league/internal/profile"
	"github.com/tympollack/keep-rocket-league/internal/redis"
	"github.com/tympollack/keep-rocket-league/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func(context.Context) error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	accountStore := account.NewMongoStore(infra.DB)
	profiles := profile.NewClient(cfg.SteamAPIKey, cfg.SteamAPIBaseURL, cfg.SteamProfileTimeout)

	steamProvider, err := steam.New(cfg.SteamReturnURL, cfg.SteamRealm)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(steamProvider)

	authHandler := handler.NewHandler(
		registry,
		profiles,
		accountStore,
		sessionStore,
		cfg.SessionTTL,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/timestamp", timestampHandler)

	mongoCheck := mongo.Healthcheck(infra.Mongo)
	redisCheck := redis.Healthcheck(infra.Redis)

	router.GET("/health", func(c *gin.Context) {
		probeCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := mongoCheck(probeCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "mongo unavailable"})
			return
		}
		if err := redisCheck(probeCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", homeHandler)

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		steamID, _ := middleware.SteamIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"steam_id": steamID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func(shutdownCtx context.Context) error {
		if err := infra.Redis.Close(); err != nil {
			return err
		}
		return infra.Mongo.Disconnect(shutdownCtx)
	}, nil
}
