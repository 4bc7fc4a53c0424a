package app

import (
	"context"

	gomongo "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tympollack/keep-rocket-league/internal/config"
	"github.com/tympollack/keep-rocket-league/internal/logger"
	"github.com/tympollack/keep-rocket-league/internal/mongo"
	"github.com/tympollack/keep-rocket-league/internal/redis"
)

type Infra struct {
	Mongo *gomongo.Client
	DB    *gomongo.Database
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	mongoClient, err := mongo.New(ctx, cfg.MongoURL)
	if err != nil {
		return nil, err
	}

	logger.Info("mongo ready", nil)

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		Mongo: mongoClient,
		DB:    mongoClient.Database(cfg.MongoDatabase),
		Redis: redisClient,
	}, nil
}
