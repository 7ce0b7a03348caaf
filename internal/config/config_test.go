package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/config"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

var keys = []string{
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_TLS", "DND5E_API_URL", "DND5E_HTTP_TIMEOUT",
	"DND5E_CACHE_TTL", "HOMEBREW_PATH", "LOG_LEVEL",
}

// clearEnv unsets every key for the test and restores it afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.DND5eAPIURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Empty(t, cfg.HomebrewPath)
	assert.False(t, cfg.RedisTLS)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"REDIS_ADDR=redis:6380\nREDIS_TLS=true\nDND5E_CACHE_TTL=1h\nHOMEBREW_PATH=/srv/homebrew.yaml\nLOG_LEVEL=debug\n",
	), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.True(t, cfg.RedisTLS)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "/srv/homebrew.yaml", cfg.HomebrewPath)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel(), "environment wins over the file")
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DND5E_HTTP_TIMEOUT", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{
		RedisAddr:   "localhost:6379",
		DND5eAPIURL: "http://localhost:3000/api/2014/",
		HTTPTimeout: time.Second,
		LogLevel:    "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "LOG_LEVEL")

	cfg.LogLevel = "ERROR"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())

	var missing *config.Config
	assert.Error(t, missing.Validate())
}
