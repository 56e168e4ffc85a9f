// @title Smart Shelf API
// @version 1.0
// @description Tracks food containers and the items weighed on them.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/SmartShelf_Go/docs"
	"github.com/osse101/SmartShelf_Go/internal/config"
	"github.com/osse101/SmartShelf_Go/internal/database"
	"github.com/osse101/SmartShelf_Go/internal/database/postgres"
	"github.com/osse101/SmartShelf_Go/internal/query"
	"github.com/osse101/SmartShelf_Go/internal/server"
	"github.com/osse101/SmartShelf_Go/internal/session"
	"github.com/osse101/SmartShelf_Go/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load reads .env, so it runs before the environment check
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	initLogger(cfg)
	for _, w := range warnings {
		slog.Warn("Config warning", "warning", w)
	}

	exec, pool, err := openBackend(cfg)
	if err != nil {
		slog.Error("Failed to open store backend", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	sessions := session.NewRegistry(query.NewClient(exec), session.Config{
		Size:            cfg.SessionCacheSize,
		TTL:             cfg.SessionTTL,
		FeedbackLimit:   cfg.FeedbackLimit,
		DefaultDeviceID: cfg.DefaultDeviceID,
		Logger:          slog.Default(),
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		DBPool:         pool,
		Sessions:       sessions,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	sessions.Close()
	if pool != nil {
		pool.Close()
	}
	slog.Info("Server stopped")
}

// openBackend returns the configured query executor, instrumented for
// metrics. The pool is nil for the in-memory store.
func openBackend(cfg *config.Config) (query.Executor, database.Pool, error) {
	if !cfg.UsesPostgres() {
		slog.Info("Using in-memory store; records are lost on restart")
		return query.Instrument(store.NewExecutor(store.New()), config.BackendMemory), nil, nil
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return query.Instrument(postgres.NewExecutor(pool), config.BackendPostgres), pool, nil
}
