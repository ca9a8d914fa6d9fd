// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elibrary/internal/book"
	"elibrary/internal/config"
	"elibrary/internal/fixtures"
	"elibrary/internal/httpx"
	"elibrary/internal/library"
	"elibrary/internal/server"
	"elibrary/internal/store"
	"elibrary/internal/telemetry"
	"elibrary/internal/user"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("setup tracing", "error", err)
		os.Exit(1)
	}

	var (
		userOpts    []store.Option[user.User]
		bookOpts    []store.Option[book.Book]
		libraryOpts []store.Option[library.Library]
	)
	if cfg.SeedFile != "" {
		set, err := fixtures.Load(cfg.SeedFile)
		if err != nil {
			logger.Error("load seed file", "path", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		now := time.Now()
		userOpts = append(userOpts, store.WithSeed(set.SeedUsers(now)...))
		bookOpts = append(bookOpts, store.WithSeed(set.SeedBooks(now)...))
		libraryOpts = append(libraryOpts, store.WithSeed(set.SeedLibraries(now)...))
		logger.Info("seeded stores",
			"users", len(set.Users),
			"books", len(set.Books),
			"libraries", len(set.Libraries),
		)
	}

	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	router := server.NewRouter(server.Deps{
		Logger:         logger,
		Users:          user.NewService(user.NewMemoryRepository(userOpts...)),
		Books:          book.NewService(book.NewMemoryRepository(bookOpts...)),
		Libraries:      library.NewService(library.NewMemoryRepository(libraryOpts...)),
		Metrics:        httpx.NewMetrics(),
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("e-library API listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("flush traces", "error", err)
	}
}
