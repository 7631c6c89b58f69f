package main

import (
	"context"
	"fmt"
	"os"

	"cycleparking/internal/app"
	"cycleparking/internal/config"
	"cycleparking/internal/env"
	"cycleparking/internal/logger"
	"cycleparking/pkg/graceful"

	"go.uber.org/zap"
)

func main() {
	envErr := env.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		log.Debug("No .env file found, assuming environment variables are set directly.", zap.Error(envErr))
	}

	err = run(cfg, log)
	if err != nil {
		log.Error("Run failed", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := graceful.Context(context.Background(), log)
	defer cancel()

	a, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("Failed to close", zap.Error(err))
		}
	}()

	log.Info("Building bicycle parking collection",
		zap.Int64("area_id", cfg.Overpass.AreaID),
		zap.String("output", cfg.Output.Path),
		zap.Bool("editor_link", cfg.Editor.IncludeLink))

	return a.Run(ctx)
}
