package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "data/mango.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "auto", cfg.R2.Region)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
storage:
  driver: redis
redis:
  host: cache.internal
  port: "6380"
logging:
  level: debug
  pretty: false
`)
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr())
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
}

func TestPortEnvWins(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("PORT", "7001")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "localstorage")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage driver")
	})

	t.Run("unknown server mode", func(t *testing.T) {
		t.Setenv("SERVER_MODE", "production")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown server mode")
	})

	t.Run("r2 needs bucket", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "R2")
		t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acc")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("r2 complete", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "r2")
		t.Setenv("CLOUDFLARE_ACCOUNT_ID", "acc")
		t.Setenv("CLOUDFLARE_BUCKET_NAME", "mango")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "https://acc.r2.cloudflarestorage.com", cfg.R2.Endpoint())
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("MANGO_FLAG", "yes")
	t.Setenv("MANGO_NUM", "not-a-number")

	assert.True(t, GetEnvAsBool("MANGO_FLAG", false))
	assert.True(t, GetEnvAsBool("MANGO_UNSET_FLAG", true))
	assert.Equal(t, 42, GetEnvAsInt("MANGO_NUM", 42))
	assert.Equal(t, "fallback", GetEnv("MANGO_UNSET", "fallback"))
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "mango", Password: "secret", Name: "catalog", SSLMode: "disable"}
	assert.Equal(t, "host=db user=mango password=secret dbname=catalog port=5432 sslmode=disable", d.DSN())
}
