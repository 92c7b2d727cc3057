package domain

import "strings"

// NotAvailable is the placeholder OMDb returns for fields it has no data for
const NotAvailable = "N/A"

// PageSize is the number of results OMDb returns per search page.
// It is a client-side convention used to compute page counts; the API
// does not guarantee it.
const PageSize = 10

// TypeFilter restricts a search to one kind of title
type TypeFilter string

const (
	TypeAny     TypeFilter = ""
	TypeMovie   TypeFilter = "movie"
	TypeSeries  TypeFilter = "series"
	TypeEpisode TypeFilter = "episode"
)

// TypeFilters lists the selectable filters in display order
var TypeFilters = []TypeFilter{TypeAny, TypeMovie, TypeSeries, TypeEpisode}

// Valid reports whether t is one of the known filters
func (t TypeFilter) Valid() bool {
	switch t {
	case TypeAny, TypeMovie, TypeSeries, TypeEpisode:
		return true
	}
	return false
}

// Label returns a human-readable name for the filter
func (t TypeFilter) Label() string {
	switch t {
	case TypeMovie:
		return "Movies"
	case TypeSeries:
		return "Series"
	case TypeEpisode:
		return "Episodes"
	default:
		return "All"
	}
}

// Next returns the filter after t in TypeFilters, wrapping around
func (t TypeFilter) Next() TypeFilter {
	for i, f := range TypeFilters {
		if f == t {
			return TypeFilters[(i+1)%len(TypeFilters)]
		}
	}
	return TypeAny
}

// Prev returns the filter before t in TypeFilters, wrapping around
func (t TypeFilter) Prev() TypeFilter {
	for i, f := range TypeFilters {
		if f == t {
			return TypeFilters[(i+len(TypeFilters)-1)%len(TypeFilters)]
		}
	}
	return TypeAny
}

// PlotVerbosity selects the short or full plot synopsis
type PlotVerbosity string

const (
	PlotShort PlotVerbosity = "short"
	PlotFull  PlotVerbosity = "full"
)

// ParsePlotVerbosity converts a config value to a PlotVerbosity, defaulting to full
func ParsePlotVerbosity(s string) PlotVerbosity {
	if strings.EqualFold(strings.TrimSpace(s), string(PlotShort)) {
		return PlotShort
	}
	return PlotFull
}

// SearchResultItem is a single title in a search result page
type SearchResultItem struct {
	ID        string // IMDb ID, opaque to us
	Title     string
	Year      string // Free-form, e.g. "2008" or "2008–2013"
	Type      string // movie, series, episode, game
	PosterURL string // Empty when OMDb has no poster
}

// HasPoster returns true if the item carries a poster URL
func (i SearchResultItem) HasPoster() bool {
	return i.PosterURL != ""
}

// SearchResultPage is one page of search results
type SearchResultPage struct {
	Items      []SearchResultItem
	TotalCount int // Total matches across all pages
}

// TotalPages returns the number of pages implied by TotalCount, never less than 1
func (p SearchResultPage) TotalPages() int {
	pages := (p.TotalCount + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ExternalRating is a score from a third-party source (IMDb, Rotten Tomatoes, Metacritic)
type ExternalRating struct {
	Source string
	Value  string
}

// TitleDetail is the full record for one title.
// String fields may hold NotAvailable; use Available or OrFallback when displaying.
type TitleDetail struct {
	SearchResultItem

	Rated        string
	Released     string
	Runtime      string
	Genre        string
	Director     string
	Writer       string
	Actors       string
	Plot         string
	Language     string
	Country      string
	Awards       string
	Ratings      []ExternalRating
	Metascore    string
	IMDbRating   string
	IMDbVotes    string
	TotalSeasons string
}

// Available returns true if v holds real data
func Available(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != NotAvailable
}

// OrFallback returns v, or fallback when v is missing
func OrFallback(v, fallback string) string {
	if Available(v) {
		return v
	}
	return fallback
}
