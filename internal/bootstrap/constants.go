package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileName is the active log file inside LOG_DIR
	LogFileName = "herbcalc.log"

	// LogFileMaxSizeMB rotates the active file once it grows past this size
	LogFileMaxSizeMB = 50

	// LogFileRetentionCount is the number of rotated files to keep
	LogFileRetentionCount = 9

	// LogFileMaxAgeDays removes rotated files older than this
	LogFileMaxAgeDays = 28
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized    = "Logging initialized"
	LogMsgStartingHerbCalc      = "Starting HerbFarmCalc"
	LogMsgConfigurationLoaded   = "Configuration loaded"
	LogMsgFailedCreateLogsDir   = "failed to create logs directory"
	LogMsgRepositoriesReady     = "Repositories initialized"
	LogMsgServicesReady         = "Services initialized"
	LogMsgEnvironmentWarning    = "Environment warning"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgLogFileCloseFailed   = "Failed to close log file"

	// ShutdownTimeout bounds how long in-flight requests get to finish
	ShutdownTimeout = 15 * time.Second
)
