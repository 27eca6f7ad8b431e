package config

import (
	"flag"
	"os"
	"time"

	"github.com/careersync/careersync/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the remote API (default from Config)
//	-d string   path to the local database file
//	-t int      session timeout in seconds
//	-debug      verbose logging
//
// os.Args is filtered to only the flags handled here, so other components
// can own their own flag sets.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	sessionTimeout := fs.Int("t", int(cfg.SessionTimeout.Seconds()), "session timeout (in seconds)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTimeout = time.Duration(*sessionTimeout) * time.Second
}
