package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/marketplace/internal/app"
	"github.com/nfrund/marketplace/internal/config"
	"github.com/nfrund/marketplace/internal/events"
	"github.com/nfrund/marketplace/internal/logging"
	"github.com/nfrund/marketplace/internal/pubsub"
	"github.com/nfrund/marketplace/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.New()
	logger := logging.New(cfg)
	logger.Info("Starting marketplace storefront", "app_env", cfg.GetAppEnv(), "api_url", cfg.GetAPIURL())

	injector := app.New(cfg, logger, afero.NewOsFs())

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	bus := do.MustInvoke[*pubsub.WatermillBridge](injector)
	defer func() {
		if err := bus.Close(); err != nil {
			slog.Error("Failed to close event bus", "error", err)
		}
	}()
	if err := events.StartAudit(ctx, bus, logger); err != nil {
		slog.Error("Failed to start audit subscriber", "error", err)
		os.Exit(1)
	}

	srv := do.MustInvoke[*server.Server](injector)
	if err := srv.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}
}
