package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/koach/internal/flagx"
	"github.com/dmitrijs2005/koach/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept either strings such as "10s" or integer nanoseconds. Absent keys
// keep the values already in Config.
type JsonConfig struct {
	Address         *string         `json:"address"`
	DatabaseDSN     *string         `json:"database_dsn"`
	SecretKey       *string         `json:"secret_key"`
	LogLevel        *string         `json:"log_level"`
	AllowedOrigins  *string         `json:"allowed_origins"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the file named by -c/-config, if any, onto config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIf(&config.Address, c.Address)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.AllowedOrigins, c.AllowedOrigins)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
