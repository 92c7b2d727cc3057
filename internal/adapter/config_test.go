package adapter

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from API keys set in the developer's shell
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("NEXTEP_OMDB_API_KEY", "")
	t.Setenv("NEXTEP_UI_GRID_COLUMNS", "")
	t.Setenv("NEXTEP_OMDB_TIMEOUT", "")
}

func TestLoadConfig_FromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`omdb:
  api_key: file-key
  plot: short
  timeout: 5
ui:
  grid_columns: 3
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.OMDb.APIKey)
	assert.Equal(t, "short", cfg.OMDb.Plot)
	assert.Equal(t, 5, cfg.OMDb.Timeout)
	assert.Equal(t, DefaultOMDbURL, cfg.OMDb.BaseURL)
	assert.Equal(t, 3, cfg.UI.GridColumns)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.HasAPIKey())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("omdb:\n  api_key: file-key\n"), 0644))

	t.Setenv("NEXTEP_OMDB_API_KEY", "env-key")
	t.Setenv("NEXTEP_UI_GRID_COLUMNS", "4")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.OMDb.APIKey)
	assert.Equal(t, 4, cfg.UI.GridColumns)
}

func TestLoadConfig_BareEnvKey(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  grid_columns: 2\n"), 0644))
	t.Setenv("OMDB_API_KEY", "bare-key")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bare-key", cfg.OMDb.APIKey)
}

func TestLoadConfig_MissingKeyIsNotFatal(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("omdb:\n  timeout: -1\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "omdb.timeout")
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.OMDb.APIKey = "saved-key"
	cfg.UI.GridColumns = 3

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.OMDb.APIKey)
	assert.Equal(t, 3, loaded.UI.GridColumns)
	assert.Equal(t, cfg.Logging.File, loaded.Logging.File)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "query", "Batman")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"query":"Batman"`)
}

func TestSetupLogger_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nextep.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "info"})
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
