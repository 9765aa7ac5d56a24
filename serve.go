package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"

	"bonus-malus/internal/config"
	"bonus-malus/internal/handler"
	"bonus-malus/internal/logging"
	"bonus-malus/internal/metrics"
	"bonus-malus/internal/web"
)

func newServeCmd() *cobra.Command {
	var configPath, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server with the form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides config and PORT)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logger := logging.New(os.Stdout, "bonus-malus", cfg.LogFormat, cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	h := handler.New(logger, m, reg, renderer)

	server := &fasthttp.Server{
		Handler:      h.Route,
		Name:         "bonus-malus",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("bonus-malus engine starting", "addr", cfg.Addr())
		serverErr <- server.ListenAndServe(cfg.Addr())
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
