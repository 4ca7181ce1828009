package main

import (
	"context"

	"agenda-server/internal/bootstrap"
	"agenda-server/internal/config"
	"agenda-server/internal/observability"
	"agenda-server/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		observability.NewLogger().Fatal(ctx, "failed to load configuration", err)
	}

	logger := observability.NewLoggerWithLevel(cfg.LogLevel)
	defer logger.Sync()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "shutdown failed", err)
	}
}
