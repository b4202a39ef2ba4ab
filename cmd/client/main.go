package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/crewhive/crewhive/internal/client/cli"
	"github.com/crewhive/crewhive/internal/client/config"
	"github.com/crewhive/crewhive/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
