package config

import (
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/careersync/careersync/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given in seconds; zero values leave the current setting untouched.
type JsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	DatabasePath      string `json:"database_path"`
	SessionTimeoutSec int    `json:"session_timeout_sec"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. With no flag the function is a no-op; read or
// unmarshal errors panic (the caller treats a broken config file as fatal).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionTimeoutSec > 0 {
		cfg.SessionTimeout = time.Duration(jc.SessionTimeoutSec) * time.Second
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
}
