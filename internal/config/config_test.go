package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "CONTENT_FILE", "ANALYTICS_DB",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
		"SHUTDOWN_TIMEOUT", "ANALYTICS_RETENTION_DAYS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HumanLogs())
	assert.False(t, cfg.AnalyticsEnabled())
	assert.Equal(t, "portfolio", cfg.ServiceName)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 365*24*time.Hour, cfg.CleanupAfter)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("ANALYTICS_DB", "/tmp/a.db")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("ANALYTICS_RETENTION_DAYS", "30")

	cfg := Load()
	assert.Equal(t, ":3000", cfg.Addr())
	assert.True(t, cfg.HumanLogs())
	assert.True(t, cfg.AnalyticsEnabled())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*24*time.Hour, cfg.CleanupAfter)
}

func TestLoadIgnoresBadDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("ANALYTICS_RETENTION_DAYS", "-1")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 365*24*time.Hour, cfg.CleanupAfter)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTEL_SERVICE_NAME=site\nLOG_LEVEL=debug\n"), 0o600))

	// Values already present in the environment win over the file.
	t.Setenv("LOG_LEVEL", "warn")
	require.NoError(t, os.Unsetenv("OTEL_SERVICE_NAME"))
	require.NoError(t, LoadEnvFile(path))

	cfg := Load()
	assert.Equal(t, "site", cfg.ServiceName)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnvFileMissing(t *testing.T) {
	require.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
	require.NoError(t, LoadEnvFile(""))
}
