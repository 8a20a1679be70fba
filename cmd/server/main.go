package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"taskkeeper/internal/app/server/api"
	"taskkeeper/internal/app/server/config"
	"taskkeeper/internal/domain/objectstore"
	"taskkeeper/internal/infrastructure/storage/postgres"
	"taskkeeper/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	var (
		storage api.Storage
		backend string
	)

	if cfg.InMemory() {
		log.Warn("DATABASE_URI is empty, objects are kept in memory")
		storage = objectstore.NewMemoryRepository()
		backend = "memory"
	} else {
		db, err := postgres.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		storage = postgres.NewObjectRepository(db.Pool(), log)
		backend = "postgres"
	}

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(storage, backend, cfg.Server.APIKey, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", cfg.Server.RunAddress, "env", cfg.Env, "storage", backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
