package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pachamama-cloud/superadmin-dashboard/internal/api"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/backend"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/config"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/query"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/service"
	"github.com/pachamama-cloud/superadmin-dashboard/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting superadmin dashboard",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("api_host", cfg.APIHost),
	)

	// Query cache and per-session screen state
	store := query.NewStore(cfg.CacheTTL)
	sessions := state.NewManager(cfg.SessionTTL, cfg.SearchDebounce)

	// Platform API clients are built per call so each request carries
	// the caller's cookies and tenant host
	clientCfg := backend.Config{
		Scheme:     cfg.APIScheme,
		Host:       cfg.APIHost,
		Timeout:    cfg.APITimeout,
		RetryCount: cfg.APIRetryCount,
	}
	clients := func(subdomain, cookies string) service.Client {
		return backend.New(clientCfg, subdomain, cookies)
	}

	deps := &api.Dependencies{
		Restaurantes: service.NewRestaurantes(store, sessions, clients, logger),
		Admins:       service.NewAdmins(store, sessions, clients, logger),
	}

	// Setup router
	router := api.NewRouter(logger, deps)
	router.Setup()

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
