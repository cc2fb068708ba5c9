package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MATCH_CONFIG", "")
	t.Setenv("MATCH_DATABASE_URL", "postgres://localhost/circle_test")
	t.Setenv("MATCH_SERVICE_SECRET", "test-secret")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Addr)
	assert.Equal(t, 45, cfg.InactiveDays)
	assert.Equal(t, 500, cfg.PoolLimit)
	assert.Equal(t, 30, cfg.CacheTTLSeconds)
	assert.Equal(t, "postgres://localhost/circle_test", cfg.DatabaseURL)
	assert.Equal(t, "test-secret", cfg.ServiceSecret)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MATCH_CONFIG", "")
	t.Setenv("MATCH_DATABASE_URL", "postgres://localhost/circle_test")
	t.Setenv("MATCH_SERVICE_SECRET", "test-secret")
	t.Setenv("MATCH_ADDR", ":9100")
	t.Setenv("MATCH_POOL_LIMIT", "250")
	t.Setenv("MATCH_LOG_DEBUG", "true")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, 250, cfg.PoolLimit)
	assert.True(t, cfg.LogDebug)
}

func TestLoadConfig_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":7000\"\ndatabase_url: postgres://file/db\nservice_secret: file-secret\npool_limit: 100\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("MATCH_CONFIG", path)
	t.Setenv("MATCH_POOL_LIMIT", "50") // env wins over the file

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
	assert.Equal(t, "file-secret", cfg.ServiceSecret)
	assert.Equal(t, 50, cfg.PoolLimit)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("MATCH_CONFIG", "")
	t.Setenv("MATCH_DATABASE_URL", "")
	t.Setenv("MATCH_SERVICE_SECRET", "test-secret")

	_, err := loadConfig()
	assert.ErrorContains(t, err, "database_url")

	t.Setenv("MATCH_DATABASE_URL", "postgres://localhost/circle_test")
	t.Setenv("MATCH_SERVICE_SECRET", "")

	_, err = loadConfig()
	assert.ErrorContains(t, err, "service_secret")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Setenv("MATCH_CONFIG", "")
	t.Setenv("MATCH_DATABASE_URL", "postgres://localhost/circle_test")
	t.Setenv("MATCH_SERVICE_SECRET", "test-secret")
	t.Setenv("MATCH_INACTIVE_DAYS", "0")

	_, err := loadConfig()
	assert.ErrorContains(t, err, "inactive_days")
}
