package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds runtime settings for the terminal client.
type Config struct {
	ServerBaseURL  string
	SessionDSN     string
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	LogLevel       slog.Level
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.SessionDSN = "booth.db"
	c.ConnectTimeout = 30 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = slog.LevelWarn
}

// LoadConfig applies defaults, then the JSON file named in args (if any),
// then the flags in args. args excludes the program name.
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
