package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig lists the environment variables the server reads. Unset
// variables leave Config untouched.
type EnvConfig struct {
	Address         *string        `env:"ADDRESS"`
	DatabaseDSN     *string        `env:"DATABASE_DSN"`
	SecretKey       *string        `env:"JWT_SECRET"`
	LogLevel        *string        `env:"LOG_LEVEL"`
	AllowedOrigins  *string        `env:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout *time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func parseEnv(config *Config) error {
	var c EnvConfig
	if err := env.Parse(&c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	setIf(&config.Address, c.Address)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.AllowedOrigins, c.AllowedOrigins)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = *c.ShutdownTimeout
	}
	return nil
}
