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

	"github.com/osse101/castline/internal/bootstrap"
	"github.com/osse101/castline/internal/config"
	"github.com/osse101/castline/internal/database"
	"github.com/osse101/castline/internal/server"
	"github.com/osse101/castline/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, _ := cfg.ValidateWithWarnings()
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schemas := validation.NewSchemaValidator()

	cat, pool, err := bootstrap.LoadCatalog(ctx, cfg, schemas)
	if err != nil {
		return err
	}
	// A nil *pgxpool.Pool must stay a nil interface for readiness checks
	var dbPool database.Pool
	if pool != nil {
		dbPool = pool
	}

	flagship, err := bootstrap.LoadFlagship(cfg, schemas)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return err
	}

	svc, err := bootstrap.NewEncounterService(cfg, cat, flagship)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return err
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, svc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{DBPool: dbPool})
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, DBPool: dbPool})
	return nil
}
