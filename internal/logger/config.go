package logger

import (
	"log/slog"
	"slices"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // debug, info, warn or error
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string
	AddSource   bool // include file:line in records
}

// NewConfig creates a config from explicit values. Source locations are
// enabled for development environments.
func NewConfig(level, format, serviceName, version, environment string) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   IsDevelopment(environment),
	}
}

// DefaultConfig is the fallback when no config is provided
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, "")
}

// CLIConfig suits a terminal tool: text records at warn and above, leaving
// stdout to the tool's own output.
func CLIConfig(level string) Config {
	if level == "" {
		level = LogLevelWarn
	}
	return NewConfig(level, LogFormatText, CLIServiceName, DefaultVersion, "")
}

// IsDevelopment reports whether env names a local development environment
func IsDevelopment(env string) bool {
	return slices.Contains(developmentEnvironments, strings.ToLower(env))
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes returns the attributes added to every record. Empty values are omitted.
func (c Config) BaseAttributes() []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
