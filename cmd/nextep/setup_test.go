package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmcdole/nextep/internal/domain"
)

func TestKeyCheckResult(t *testing.T) {
	assert.NoError(t, keyCheckResult(nil))
	assert.NoError(t, keyCheckResult(&domain.UpstreamError{Message: "Movie not found!"}))
	assert.NoError(t, keyCheckResult(fmt.Errorf("search: %w", &domain.UpstreamError{Message: "Movie not found!"})))

	invalid := &domain.UpstreamError{Message: "Invalid API key!"}
	assert.Equal(t, invalid, keyCheckResult(invalid))

	unauthorized := &domain.TransportError{StatusCode: 401}
	assert.True(t, errors.Is(keyCheckResult(unauthorized), unauthorized))
}

func TestRootCmd_Wiring(t *testing.T) {
	cmd := newRootCmd()

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["setup"])
	assert.True(t, names["version"])
}

func TestLoadConfig_LogLevelOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	cfg, err := loadConfig(&rootOptions{cfgFile: "", logLevel: "debug"})
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}
