package main

import (
	"context"
	"log"
	"os"

	"github.com/careersync/careersync/internal/client/cli"
	"github.com/careersync/careersync/internal/client/config"
	"github.com/careersync/careersync/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, cfg.Debug)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
