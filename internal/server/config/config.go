// Package config loads the demo backend's configuration from environment
// variables, optionally seeded from a .env file.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/crewhive/crewhive/internal/shared"
)

type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// TimeZone controls the zone the generated calendar data lives in.
	TimeZone string

	// RateLimit is the per-IP request budget per minute.
	RateLimit int
}

// LoadConfig reads settings from the environment. A missing .env file is
// logged and ignored; unset variables fall back to defaults.
func LoadConfig(logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", zap.Error(err))
	}

	secret := os.Getenv("CREWHIVE_JWT_SECRET")
	if secret == "" {
		// An ephemeral secret keeps unconfigured deployments working;
		// sessions will not survive a restart.
		var err error
		secret, err = shared.MakeRandHexString(32)
		if err != nil {
			return nil, err
		}
		logger.Warn("CREWHIVE_JWT_SECRET not set, using an ephemeral secret")
	}

	cfg := &Config{
		Addr:         getEnv("CREWHIVE_ADDR", ":8080"),
		JWTSecret:    secret,
		TimeZone:     getEnv("CREWHIVE_TZ", "UTC"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		AccessTTL:    15 * time.Minute,
		RefreshTTL:   30 * 24 * time.Hour,
		RateLimit:    120,
	}

	var err error
	if cfg.AccessTTL, err = getDuration("CREWHIVE_ACCESS_TTL", cfg.AccessTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTTL, err = getDuration("CREWHIVE_REFRESH_TTL", cfg.RefreshTTL); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = getDuration("CREWHIVE_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getDuration("CREWHIVE_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return nil, err
	}
	if cfg.IdleTimeout, err = getDuration("CREWHIVE_IDLE_TIMEOUT", cfg.IdleTimeout); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return time.ParseDuration(v)
}

// Location resolves TimeZone, defaulting to UTC on bad input.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
