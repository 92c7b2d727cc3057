package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the longest title text accepted for a search, in characters
const MaxQueryLength = 50

// MaxYearLength bounds the year filter input
const MaxYearLength = 4

// SearchQuery is a validated request for one page of search results
type SearchQuery struct {
	Text string
	Page int
	Type TypeFilter
	Year string
}

// ValidateTitle trims text and checks it against the length bounds.
// It returns the trimmed text on success.
func ValidateTitle(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ValidationError{Reason: ErrEmptyQuery}
	}
	if utf8.RuneCountInString(trimmed) > MaxQueryLength {
		return "", &ValidationError{Reason: ErrQueryTooLong}
	}
	return trimmed, nil
}

// TruncateYear limits a year input to MaxYearLength characters
func TruncateYear(year string) string {
	if utf8.RuneCountInString(year) <= MaxYearLength {
		return year
	}
	return string([]rune(year)[:MaxYearLength])
}

// NewSearchQuery builds a SearchQuery, enforcing the title bounds before any request is made
func NewSearchQuery(text string, page int, typ TypeFilter, year string) (SearchQuery, error) {
	trimmed, err := ValidateTitle(text)
	if err != nil {
		return SearchQuery{}, err
	}
	if page < 1 {
		page = 1
	}
	if !typ.Valid() {
		typ = TypeAny
	}
	return SearchQuery{
		Text: trimmed,
		Page: page,
		Type: typ,
		Year: TruncateYear(strings.TrimSpace(year)),
	}, nil
}
