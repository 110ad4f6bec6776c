// Command server runs the bankist HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bankist/internal/config"
	"bankist/internal/database"
	"bankist/internal/handlers"
	"bankist/internal/middleware"
	"bankist/internal/presenter"
	"bankist/internal/repositories"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accounts, closeStorage, err := openAccountRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := services.NewPrometheusMetrics(reg)
	audit := services.NewAuditLogger(logger)
	directory := services.NewDirectoryService(accounts, metrics, logger)
	session := services.NewSessionService(accounts, audit, metrics, logger)

	if cfg.Bank.SeedDemoAccounts {
		if err := directory.LoadDemoAccounts(ctx); err != nil {
			return err
		}
	} else if err := accounts.Initialize(ctx, nil); err != nil {
		return fmt.Errorf("failed to open account directory: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(reg, logger)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.HTTPMetrics(reg))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("16K"))

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	go limiter.Cleanup(ctx)

	handlers.RegisterRoutes(
		e,
		handlers.NewSessionHandler(session, presenter.NewScreen(cfg.Bank.Currency)),
		handlers.NewAccountHandler(directory),
		handlers.NewHealthCheckHandler(directory, cfg.Storage.Driver),
		limiter.Middleware(),
	)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"address", cfg.Address(),
			"storage", cfg.Storage.Driver,
			"environment", cfg.Server.Environment,
		)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// openAccountRepository picks the account directory backend for the configured driver.
// The returned func releases the storage.
func openAccountRepository(cfg *config.Config, logger *slog.Logger) (repositories.AccountRepositoryInterface, func(), error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return repositories.NewMemoryAccountRepository(), func() {}, nil
	}

	db, err := database.Initialize(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	breaker := repositories.NewCircuitBreaker(repositories.DefaultCircuitBreakerConfig())
	return repositories.NewGuardedAccountRepository(repositories.NewAccountRepository(db.DB), breaker), closeDB, nil
}
