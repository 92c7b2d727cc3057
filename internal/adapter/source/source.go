package source

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/nextep/internal/adapter"
	"github.com/mmcdole/nextep/internal/adapter/source/omdb"
	"github.com/mmcdole/nextep/internal/domain"
)

// SourceConfig contains the configuration needed to create a TitleRepository
type SourceConfig struct {
	BaseURL string
	APIKey  string // May be empty; the client reports it on first use
	Timeout time.Duration
}

// NewClient creates the title database client.
// A missing API key is not an error here. It surfaces as a
// ConfigurationError when the first request is attempted.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.TitleRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = adapter.DefaultOMDbURL
	}

	return omdb.NewClient(baseURL, cfg.APIKey, cfg.Timeout, logger), nil
}

// NewClientFromConfig creates a TitleRepository from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.TitleRepository, error) {
	return NewClient(&SourceConfig{
		BaseURL: cfg.OMDb.BaseURL,
		APIKey:  cfg.OMDb.APIKey,
		Timeout: time.Duration(cfg.OMDb.Timeout) * time.Second,
	}, logger)
}
