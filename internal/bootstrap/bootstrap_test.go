package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbFarmCalc_Go/internal/config"
)

func testConfig(logDir string) *config.Config {
	return &config.Config{
		Port:        8080,
		LogLevel:    "debug",
		LogFormat:   "json",
		LogDir:      logDir,
		Environment: "test",
		ServiceName: "herbcalc-test",
		Version:     "0.0.0",
	}
}

func TestSetupLogger_WritesRotatingFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := SetupLogger(testConfig(dir))
	require.NoError(t, err)
	require.NotNil(t, closer)

	slog.Info("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "herbcalc-test")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer, err := SetupLogger(testConfig(""))
	require.NoError(t, err)
	assert.Nil(t, closer)
}

type mockPool struct{ mock.Mock }

func (m *mockPool) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockPool) Close()                         { m.Called() }

type mockCloser struct{ mock.Mock }

func (m *mockCloser) Close() error { return m.Called().Error(0) }

func TestGracefulShutdown(t *testing.T) {
	pool := new(mockPool)
	pool.On("Close").Return()
	logFile := new(mockCloser)
	logFile.On("Close").Return(errors.New("already closed"))

	GracefulShutdown(context.Background(), ShutdownComponents{DBPool: pool, LogFile: logFile})

	pool.AssertExpectations(t)
	logFile.AssertExpectations(t)
}

func TestGracefulShutdown_NothingToStop(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
