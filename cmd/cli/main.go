package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fittlens/fittlens-cli/internal/client/cli"
	"github.com/fittlens/fittlens-cli/internal/client/config"
	"github.com/fittlens/fittlens-cli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err.Error())
		os.Exit(1)
	}

	app.Run(ctx)
}
