// Package config loads client settings from defaults, environment, an
// optional JSON file, and command-line flags; later sources win.
package config

import "time"

// Config holds runtime settings for the CareerSync CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote prediction/auth API.
//   - DatabasePath: location of the local SQLite database.
//   - SessionTimeout: fixed session-expiry window.
//   - RequestTimeout: per-request HTTP timeout.
//   - Debug: verbose logging.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	SessionTimeout time.Duration
	RequestTimeout time.Duration
	Debug          bool
}

// LoadDefaults populates c with the development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "careersync.db"
	c.SessionTimeout = 30 * time.Minute
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON config
// file, and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
