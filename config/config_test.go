package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5555, cfg.Server.Port)
	assert.Equal(t, ":5555", cfg.Server.Address())
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.Server.PrettyJSON)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "app.db", cfg.Database.ConnectionString())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Auth.Enabled())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_PRETTY_JSON", "false")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_USER", "baker")
	t.Setenv("DATABASE_PASSWORD", "flour")
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("AUTH_TOKEN_TTL", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Server.PrettyJSON)
	assert.Equal(t,
		"host=db port=5432 user=baker dbname=bakery password=flour sslmode=disable",
		cfg.Database.ConnectionString())
	assert.True(t, cfg.Auth.Enabled())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := []byte("server:\n  port: 9000\ndatabase:\n  dsn: bakery.db\n  seed: true\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "bakery.db", cfg.Database.DSN)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("mode", func(t *testing.T) {
		t.Setenv("SERVER_MODE", "turbo")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "unsupported server mode")
	})

	t.Run("port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid server port")
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
