package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Verification disciplines. Exactly one is routed per deployment.
const (
	VerifyModeProject = "project"
	VerifyModeMachine = "machine"
)

type Config struct {
	DatabaseURL string
	Port        int
	VerifyMode  string

	TokenSalt string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimit       int
	RateLimitWindow time.Duration
}

// Load reads configuration from KEYHUB_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KEYHUB")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("VERIFY_MODE", VerifyModeProject)
	v.SetDefault("TOKEN_SALT", "keyhub_salt_2026")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT", 60)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		Port:            v.GetInt("PORT"),
		VerifyMode:      v.GetString("VERIFY_MODE"),
		TokenSalt:       v.GetString("TOKEN_SALT"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RateLimit:       v.GetInt("RATE_LIMIT"),
		RateLimitWindow: v.GetDuration("RATE_LIMIT_WINDOW"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("KEYHUB_DATABASE_URL is required")
	}
	if cfg.VerifyMode != VerifyModeProject && cfg.VerifyMode != VerifyModeMachine {
		return nil, fmt.Errorf("KEYHUB_VERIFY_MODE must be %q or %q, got %q", VerifyModeProject, VerifyModeMachine, cfg.VerifyMode)
	}
	return cfg, nil
}
