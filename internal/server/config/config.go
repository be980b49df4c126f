// Package config handles configuration for the marketplace backend,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds runtime settings for the backend.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP API.
//   - DatabaseDSN: SQLite file path, or a postgres:// URL served through pgx.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued bearer tokens.
//   - AllowedOrigins: CORS origins; "*" allows any.
//   - LogLevel: minimum level written by the JSON logger.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	AllowedOrigins        []string
	LogLevel              slog.Level
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = "booth-server.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.AllowedOrigins = []string{"*"}
	c.LogLevel = slog.LevelInfo
}

// LoadConfig applies defaults, then the optional JSON file named by
// -c/-config, then flags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
