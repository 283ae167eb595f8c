package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/HerbFarmCalc_Go/internal/database"
	"github.com/osse101/HerbFarmCalc_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	DBPool  database.Pool
	LogFile io.Closer
}

// GracefulShutdown stops the HTTP server first so no new request reaches the
// database, then closes the pool, then the log file.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFile != nil {
		if err := components.LogFile.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
