package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/HerbFarmCalc_Go/internal/config"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
)

// SetupLogger initializes the application logger.
// Records always go to stdout. When cfg.LogDir is set they are also written
// to a size-rotated file there, keeping the most recent LogFileRetentionCount
// files. The returned closer is nil when no file is used; otherwise the caller
// must close it on shutdown.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	)

	var (
		out     io.Writer = os.Stdout
		logFile *lumberjack.Logger
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		logFile = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, LogFileName),
			MaxSize:    LogFileMaxSizeMB,
			MaxBackups: LogFileRetentionCount,
			MaxAge:     LogFileMaxAgeDays,
		}
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingHerbCalc,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"prices_api", cfg.PricesAPIURL,
		"price_cache_ttl", cfg.PriceCacheTTL)

	if logFile == nil {
		return nil, nil
	}
	return logFile, nil
}
