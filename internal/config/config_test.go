package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadFrom(home, "")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8001", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, StoreBackendChain, cfg.StoreBackend)
	assert.Equal(t, filepath.Join(home, ".doctorai", "store"), cfg.StoreDir)
	assert.Equal(t, "doctorai", cfg.PassPrefix)
	assert.Equal(t, HistoryBackendTOML, cfg.HistoryBackend)
	assert.Equal(t, filepath.Join(home, ".doctorai", "history.toml"), cfg.HistoryPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, cfg.HistoryPath, cfg.Viper.GetString(KeyHistoryPath))
}

func TestLoadFromConfigFile(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".doctorai")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[api]
base_url = "https://doctor.example.com"
timeout = "5s"

[history]
backend = "sqlite"
`), 0o600))

	cfg, err := LoadFrom(home, "")
	require.NoError(t, err)
	assert.Equal(t, "https://doctor.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, HistoryBackendSQLite, cfg.HistoryBackend)
	assert.Equal(t, filepath.Join(configDir, "history.db"), cfg.HistoryPath)
}

func TestLoadFromEnvironmentOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".doctorai")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[store]\nbackend = \"pass\"\n"), 0o600))

	t.Setenv("DAI_STORE_BACKEND", "file")
	t.Setenv("DAI_API_BASE_URL", "http://10.0.2.2:8001")

	cfg, err := LoadFrom(home, "")
	require.NoError(t, err)
	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
	assert.Equal(t, "http://10.0.2.2:8001", cfg.APIBaseURL)
}

func TestLoadFromDotEnv(t *testing.T) {
	home := t.TempDir()
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DAI_STORE_PASS_PREFIX=clinic\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DAI_STORE_PASS_PREFIX") })

	cfg, err := LoadFrom(home, envFile)
	require.NoError(t, err)
	assert.Equal(t, "clinic", cfg.PassPrefix)
}

func TestLoadFromMissingDotEnvIsIgnored(t *testing.T) {
	_, err := LoadFrom(t.TempDir(), filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
}

func TestLoadFromRejectsUnknownBackends(t *testing.T) {
	t.Setenv("DAI_STORE_BACKEND", "keychain")
	_, err := LoadFrom(t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported store backend")

	t.Setenv("DAI_STORE_BACKEND", "file")
	t.Setenv("DAI_HISTORY_BACKEND", "postgres")
	_, err = LoadFrom(t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported history backend")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel(" ERROR "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("nonsense"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
}

func TestNewLoggerHonorsLevelVar(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(ParseLevel("warn"))

	logger := NewLogger(&buf, level)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))

	level.Set(slog.LevelDebug)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger.Warn("persist session id", slog.String("session_id", "S1"))
	assert.Contains(t, buf.String(), "session_id=S1")
}
