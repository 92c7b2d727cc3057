package domain

import (
	"context"
)

// TitleRepository provides search and lookup against the remote title database
type TitleRepository interface {
	// Search returns one page of titles matching the query
	Search(ctx context.Context, query SearchQuery) (*SearchResultPage, error)

	// GetDetail returns the full record for a single title
	GetDetail(ctx context.Context, id string, plot PlotVerbosity) (*TitleDetail, error)
}
