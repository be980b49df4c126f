package config

import (
	"encoding/json"
	"os"

	"github.com/tamakara/booth/internal/flagx"
	"github.com/tamakara/booth/internal/timex"
)

// JSONConfig is the on-disk shape of Config. Pointer fields tell an absent
// key from an empty one.
type JSONConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	SessionDSN     *string         `json:"session_dsn"`
	ConnectTimeout *timex.Duration `json:"connect_timeout"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.SessionDSN != nil {
		cfg.SessionDSN = *jc.SessionDSN
	}
	if jc.ConnectTimeout != nil {
		cfg.ConnectTimeout = jc.ConnectTimeout.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		if err := cfg.LogLevel.UnmarshalText([]byte(*jc.LogLevel)); err != nil {
			return err
		}
	}
	return nil
}
