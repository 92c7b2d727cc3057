package explorer

import (
	"errors"
	"strings"

	"github.com/mmcdole/nextep/internal/domain"
)

// User-facing status text
const (
	MsgEmptyQuery    = "Enter a title to search."
	MsgQueryTooLong  = "Titles cannot exceed 50 characters."
	MsgNoResults     = "No results found for your search."
	MsgSearchFailed  = "Could not load results. Please try again."
	MsgNotConfigured = "No OMDb API key configured. Set NEXTEP_OMDB_API_KEY or run `nextep setup`."
	MsgDetailFailed  = "Could not load details. Please try again."
)

// notFoundSignature is matched case-insensitively against upstream errors.
// OMDb reports an empty search as a failure with this text.
const notFoundSignature = "movie not found"

// isNotFound reports whether err is OMDb's "no matches" failure
func isNotFound(err error) bool {
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		return false
	}
	return strings.Contains(strings.ToLower(upstream.Message), notFoundSignature)
}

// validationMessage maps a validation error to its corrective text
func validationMessage(err error) string {
	if errors.Is(err, domain.ErrQueryTooLong) {
		return MsgQueryTooLong
	}
	return MsgEmptyQuery
}

// searchFailure classifies a failed search into a status and message
func searchFailure(err error) (SearchStatus, string) {
	var cfgErr *domain.ConfigurationError
	switch {
	case isNotFound(err):
		return SearchEmpty, MsgNoResults
	case errors.As(err, &cfgErr):
		return SearchError, MsgNotConfigured
	default:
		return SearchError, MsgSearchFailed
	}
}
