package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "athlos"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
reports_rate_limit_allowed_per_min = 60

[production]
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/athlos/analytics.log"
sentry_enabled = true
postgres_host = "athlos-db"
postgres_port = "5432"
postgres_db_name = "athlos"
redis_host = "athlos-redis"
redis_port = "6379"
prometheus_metrics_host = ""
prometheus_metrics_port = "2112"
reports_rate_limit_allowed_per_min = 120
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigContent), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("development", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
	assert.Equal(t, 60, cfg.ReportsRateLimitAllowedPerMin)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("prod", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "athlos-db", cfg.PostgresHost)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, "/var/log/athlos/analytics.log", cfg.LogsPath)
	assert.Equal(t, 120, cfg.ReportsRateLimitAllowedPerMin)
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := Load("staging", writeTestConfig(t))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
