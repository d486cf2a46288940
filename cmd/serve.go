package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/catalog/internal/server"
)

// Serve runs the HTTP API until SIGINT or SIGTERM, then drains in-flight requests.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := r.open()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	cfg := r.config.Server
	if host := cmd.String("host"); host != "" {
		cfg.Host = host
	}
	if port := cmd.Int("port"); port > 0 {
		cfg.Port = int(port)
	}

	srv := server.New(server.Options{
		Catalog: catalog,
		DB:      r.db,
		Logger:  r.logger,
		Config:  cfg,
	})

	r.logger.Info("starting catalog API", "addr", cfg.Addr(), "timeout", cfg.RequestTimeout.Duration)
	return srv.Run(ctx)
}
