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

	"github.com/osse101/HerbFarmCalc_Go/internal/bootstrap"
	"github.com/osse101/HerbFarmCalc_Go/internal/config"
	"github.com/osse101/HerbFarmCalc_Go/internal/database"
	"github.com/osse101/HerbFarmCalc_Go/internal/handler"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
	"github.com/osse101/HerbFarmCalc_Go/internal/server"

	_ "github.com/osse101/HerbFarmCalc_Go/docs"
)

// @title HerbFarmCalc API
// @version 1.0
// @description Expected survival, yield, XP and profit for Old School RuneScape herb runs.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	var envWarnings []string
	if !logger.IsDevelopment(cfg.Environment) {
		if envWarnings, err = config.ValidateEnvWithWarnings(); err != nil {
			return err
		}
		if err := cfg.RequireAPIKey(); err != nil {
			return err
		}
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	for _, warning := range envWarnings {
		slog.Warn(bootstrap.LogMsgEnvironmentWarning, "warning", warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poolOpts := database.DefaultPoolOptions(cfg.DBMaxConns)
	poolOpts.ApplicationName = cfg.ServiceName
	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), poolOpts)
	if err != nil {
		return fmt.Errorf("%s: %w", bootstrap.ErrMsgFailedConnectDatabase, err)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	if err := handler.InitValidator(); err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services.Farming, services.Pricing)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		DBPool:  dbPool,
		LogFile: logFile,
	})

	return err
}
