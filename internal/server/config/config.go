// Package config loads the server configuration.
//
// Sources, later ones override earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c or -config.
//  3. Environment variables (a .env file is loaded by main beforehand).
//  4. Command-line flags.
//
// The token secret has no default and must come from one of the sources.
package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds runtime settings for the KOACH server.
//
// Fields:
//   - Address: HTTP listen address.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - LogLevel: debug, info, warn or error.
//   - AllowedOrigins: CORS origins, comma separated.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
type Config struct {
	Address         string
	DatabaseDSN     string
	SecretKey       string
	LogLevel        string
	AllowedOrigins  string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Address = ":4000"
	c.DatabaseDSN = ""
	c.LogLevel = "info"
	c.AllowedOrigins = "*"
	c.ShutdownTimeout = 10 * time.Second
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("secret key is required (set JWT_SECRET or -s)")
	}
	if c.Address == "" {
		return errors.New("listen address is required")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	return nil
}

// Origins splits AllowedOrigins into a list.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and the process arguments, and validates the result.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
