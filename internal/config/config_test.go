package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8089", cfg.GetServerAddr())
	assert.Equal(t, int64(5<<20), cfg.Storage.QuotaBytes)
	assert.Equal(t, 7, cfg.Retention.ItemMaxAgeDays)
	assert.Equal(t, "gemini-2.5-flash", cfg.Analyzer.Model)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 9000
storage:
  quotaBytes: 1048576
retention:
  itemMaxAgeDays: 3
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, int64(1<<20), cfg.Storage.QuotaBytes)
	assert.Equal(t, 3, cfg.Retention.ItemMaxAgeDays)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.BindAddress)
	assert.Equal(t, "recruitai.db", cfg.Storage.StoreFile)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Analyzer.APIKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestStoreAndLogPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDirectory = "/var/lib/recruitai"

	assert.Equal(t, "/var/lib/recruitai/recruitai.db", cfg.StorePath())
	assert.Equal(t, "/var/lib/recruitai/logs/server.log", cfg.LogPath())

	cfg.Logging.File = "/var/log/recruitai.log"
	assert.Equal(t, "/var/log/recruitai.log", cfg.LogPath())
}

func TestEnsureDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.DataDirectory = filepath.Join(t.TempDir(), "data")

	require.NoError(t, cfg.EnsureDirectories())
	info, err := os.Stat(cfg.Storage.DataDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
