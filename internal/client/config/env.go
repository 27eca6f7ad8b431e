package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment values. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CAREERSYNC_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("CAREERSYNC_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if os.Getenv("CAREERSYNC_DEBUG") == "true" {
		cfg.Debug = true
	}
}
