// Package config loads runtime configuration for the Booth terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the marketplace backend
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "30s" or
// integer nanoseconds. Absent keys keep their previous value:
//
//	{
//	  "server_base_url": "http://10.0.2.2:8080",
//	  "session_dsn": "booth.db",
//	  "connect_timeout": "30s",
//	  "request_timeout": "30s",
//	  "log_level": "debug"
//	}
package config
