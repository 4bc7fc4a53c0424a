package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all startup configuration. Required values are validated
// once at process initialization; a missing secret must never surface as
// a per-request failure.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	SteamAPIKey    string `env:"STEAM_API_KEY,required,notEmpty"`
	SteamReturnURL string `env:"STEAM_RETURN_URL,required,notEmpty"`
	SteamRealm     string `env:"STEAM_REALM,required,notEmpty"`

	// SteamAPIBaseURL is overridable so tests can point the profile
	// resolver at a local server.
	SteamAPIBaseURL     string        `env:"STEAM_API_BASE_URL" envDefault:"https://api.steampowered.com"`
	SteamProfileTimeout time.Duration `env:"STEAM_PROFILE_TIMEOUT" envDefault:"5s"`

	MongoURL      string `env:"MONGODB_URL,required,notEmpty"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"keeprocketleague"`

	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
