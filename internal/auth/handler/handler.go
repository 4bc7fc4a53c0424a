package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tympollack/keep-rocket-league/internal/account"
	"github.com/tympollack/keep-rocket-league/internal/auth"
	"github.com/tympollack/keep-rocket-league/internal/auth/provider"
	"github.com/tympollack/keep-rocket-league/internal/logger"
	"github.com/tympollack/keep-rocket-league/internal/profile"
	"github.com/tympollack/keep-rocket-league/internal/session"
)

const homePath = "/"

// Handler orchestrates the SSO callback flow:
// verify assertion -> extract identifier -> resolve profile -> upsert
// account -> redirect home. The redirect is unconditional; every
// failure after verification degrades the flow instead of aborting it,
// and operator-facing detail goes to the log only.
type Handler struct {
	providers    *provider.Registry
	profiles     profile.Resolver
	accounts     account.Store
	sessionStore session.Store
	sessionTTL   time.Duration
}

func NewHandler(
	registry *provider.Registry,
	profiles profile.Resolver,
	accounts account.Store,
	sessionStore session.Store,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		providers:    registry,
		profiles:     profiles,
		accounts:     accounts,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// RegisterRoutes wires one login/return pair per registered provider.
// Steam calls back with GET, but both verbs are accepted on each path.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	for _, p := range h.providers.All() {
		loginPath := fmt.Sprintf("/auth/%s/login", p.Name())
		returnPath := fmt.Sprintf("/auth/%s/return", p.Name())

		login := func(c *gin.Context) { h.login(c, p) }
		callback := func(c *gin.Context) { h.callback(c, p) }

		r.GET(loginPath, login)
		r.POST(loginPath, login)
		r.GET(returnPath, callback)
		r.POST(returnPath, callback)
	}

	r.POST("/auth/logout", h.logout)
}

func (h *Handler) login(c *gin.Context, p provider.Verifier) {
	authURL, err := p.AuthURL()
	if err != nil {
		logger.Error("provider redirect url failed", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, homePath)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// callback is the single hard-failure exit of the flow: a rejected
// assertion redirects home without touching the store. Every later
// step is best-effort per the decision table below.
func (h *Handler) callback(c *gin.Context, p provider.Verifier) {
	ctx := c.Request.Context()

	assertion, err := p.Verify(ctx, c.Request)
	if err != nil {
		logger.Warn("sso assertion rejected", map[string]any{
			"provider": p.Name(),
			"error":    err.Error(),
		})
		c.Redirect(http.StatusFound, homePath)
		return
	}

	steamID, err := auth.SteamID(assertion.ClaimedID)
	if err != nil {
		// Provider contract breach, not a user-side failure.
		logger.Error("verified assertion has unparseable identity url", map[string]any{
			"provider":   p.Name(),
			"claimed_id": assertion.ClaimedID,
			"error":      err.Error(),
		})
		c.Redirect(http.StatusFound, homePath)
		return
	}

	displayName := ""
	name, err := h.profiles.DisplayName(ctx, steamID)
	switch {
	case err == nil:
		displayName = name
	case errors.Is(err, profile.ErrPlayerNotFound):
		logger.Warn("profile api returned no player", map[string]any{
			"steam_id": steamID,
		})
	default:
		logger.Error("profile fetch failed", map[string]any{
			"steam_id": steamID,
			"error":    err.Error(),
		})
	}

	acc := account.Account{SteamID: steamID, DisplayName: displayName}
	if err := h.accounts.Upsert(ctx, acc); err != nil {
		logger.Error("account upsert failed", map[string]any{
			"steam_id": steamID,
			"error":    err.Error(),
		})
	} else {
		logger.Info("steam user upserted", map[string]any{
			"steam_id":     steamID,
			"display_name": displayName,
		})
	}

	h.issueSession(c, steamID)

	c.Redirect(http.StatusFound, homePath)
}

// issueSession stores only the account identifier. Best-effort: a
// session failure never blocks the redirect.
func (h *Handler) issueSession(c *gin.Context, steamID string) {
	sessionID, err := session.GenerateID()
	if err != nil {
		logger.Error("session id generation failed", map[string]any{
			"steam_id": steamID,
			"error":    err.Error(),
		})
		return
	}

	expiresAt := time.Now().Add(h.sessionTTL)
	sess := session.Session{
		SessionID: sessionID,
		SteamID:   steamID,
		ExpiresAt: expiresAt,
	}

	if err := h.sessionStore.Create(c.Request.Context(), sess); err != nil {
		logger.Error("session persist failed", map[string]any{
			"steam_id": steamID,
			"error":    err.Error(),
		})
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// best-effort delete
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Status(http.StatusNoContent)
}
