// Command stubserver runs an in-memory ProInvestiX backend for local
// development and for the refresh smoke run.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/proinvestix/internal/adapters/http/stub"
	"github.com/okian/proinvestix/internal/app"
	"github.com/okian/proinvestix/internal/config"
	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Demo account seeded on start.
const (
	demoUsername = "demo"
	demoEmail    = "demo@proinvestix.local"
	demoPassword = "demo-password"
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger isn't available yet
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	app.ConfigureMetrics(cfg)

	srv, err := newServer(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to build stub backend", logger.Error(err))
		os.Exit(1)
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting stub backend",
			logger.String("addr", cfg.StubAddr),
			logger.String("demo_email", demoEmail))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// newServer builds the stub backend from cfg, seeds the demo account and
// wraps it in an http.Server.
func newServer(ctx context.Context, cfg *config.Config, log logger.Logger) (*http.Server, error) {
	backend, err := stub.New(
		stub.WithSecret(cfg.StubJWTSecret),
		stub.WithAccessTTL(cfg.StubAccessTTL()),
		stub.WithRefreshTTL(cfg.StubRefreshTTL()),
		stub.WithRotation(true),
		stub.WithLogger(log.Named("stub")),
	)
	if err != nil {
		return nil, err
	}
	if _, err := backend.Seed(ctx, model.RegisterRequest{
		Username: demoUsername,
		Email:    demoEmail,
		Password: demoPassword,
	}, model.RoleAdmin); err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              cfg.StubAddr,
		Handler:           backend.Handler(),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}, nil
}
