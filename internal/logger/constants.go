package logger

// Accepted LOG_LEVEL values. "warning" is an alias for "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "herbfarm-calc"
	DefaultVersion     = "dev"

	// CLIServiceName tags records written by the offline herbcalc tool
	CLIServiceName = "herbcalc"
)

// Environments that turn on source locations in log records
var developmentEnvironments = []string{"dev", "development", "local"}

// Attribute keys attached to every record or request-scoped logger
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
