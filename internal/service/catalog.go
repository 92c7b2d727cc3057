package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mmcdole/nextep/internal/domain"
)

// CatalogService fronts the title repository for the TUI.
// It adds structured logging around each round trip and nothing else:
// no caching, no retries.
type CatalogService struct {
	repo   domain.TitleRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.TitleRepository, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// Search fetches one page of results for q
func (s *CatalogService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResultPage, error) {
	start := time.Now()
	page, err := s.repo.Search(ctx, q)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Warn("search failed",
			"query", q.Text,
			"page", q.Page,
			"type", string(q.Type),
			"year", q.Year,
			"kind", ErrorKind(err),
			"error", err,
			"elapsed", elapsed,
		)
		return nil, err
	}

	s.logger.Info("search complete",
		"query", q.Text,
		"page", q.Page,
		"type", string(q.Type),
		"year", q.Year,
		"results", len(page.Items),
		"total", page.TotalCount,
		"elapsed", elapsed,
	)
	return page, nil
}

// GetDetail fetches the full record for one title
func (s *CatalogService) GetDetail(ctx context.Context, id string, plot domain.PlotVerbosity) (*domain.TitleDetail, error) {
	start := time.Now()
	detail, err := s.repo.GetDetail(ctx, id, plot)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Warn("detail failed", "id", id, "kind", ErrorKind(err), "error", err, "elapsed", elapsed)
		return nil, err
	}

	s.logger.Info("detail loaded", "id", id, "title", detail.Title, "elapsed", elapsed)
	return detail, nil
}

// ErrorKind names the taxonomy bucket of err for logging
func ErrorKind(err error) string {
	var (
		cfgErr       *domain.ConfigurationError
		transportErr *domain.TransportError
		upstreamErr  *domain.UpstreamError
		validErr     *domain.ValidationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.As(err, &validErr):
		return "validation"
	case errors.As(err, &upstreamErr):
		return "upstream"
	case errors.As(err, &transportErr):
		return "transport"
	default:
		return "unknown"
	}
}
