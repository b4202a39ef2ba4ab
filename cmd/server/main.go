package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/crewhive/crewhive/internal/server"
	"github.com/crewhive/crewhive/internal/server/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	if err := app.Run(context.Background()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
