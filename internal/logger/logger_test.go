package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("calculation complete", "herbs", 14, "player", "zezima")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
	assert.Equal(t, "calculation complete", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(14), entry["herbs"])
	assert.Equal(t, "zezima", entry["player"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.NotNil(t, FromContext(ctx))

	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotEmpty(t, GenerateRequestID())
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

func TestConfigPresets(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, DefaultServiceName, def.ServiceName)
	assert.Equal(t, slog.LevelInfo, def.LogLevel())
	assert.False(t, def.IsJSON())

	cli := CLIConfig("")
	assert.Equal(t, CLIServiceName, cli.ServiceName)
	assert.Equal(t, slog.LevelWarn, cli.LogLevel())
	assert.Equal(t, slog.LevelDebug, CLIConfig("debug").LogLevel())

	prod := NewConfig(LogLevelInfo, "JSON", DefaultServiceName, "1.2.0", "prod")
	assert.True(t, prod.IsJSON())
	assert.False(t, prod.AddSource)
	assert.True(t, NewConfig(LogLevelDebug, LogFormatText, "", "", "Dev").AddSource)
}

func TestBaseAttributes_OmitsEmpty(t *testing.T) {
	attrs := CLIConfig("").BaseAttributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
	assert.Equal(t, AttrKeyVersion, attrs[1].Key)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, Config{Level: in}.LogLevel(), in)
	}
}
