// Package explorer holds the page state of the movie explorer and the
// transitions that move it between states.
//
// State is a plain value. Every user intent and every completed request has a
// transition function that takes the current State and returns the next one,
// plus a request descriptor when a network call is needed. Nothing in this
// package performs I/O; the TUI runs the requests and feeds the outcomes back.
//
// Each dispatched request carries a per-flow sequence number. An outcome is
// applied only when its number is the latest issued for that flow, so a slow
// response can never overwrite the result of a newer request, and a detail
// response that lands after the overlay was dismissed is dropped.
package explorer

import (
	"fmt"

	"github.com/mmcdole/nextep/internal/domain"
)

// SearchStatus is the state of the search flow
type SearchStatus int

const (
	SearchIdle SearchStatus = iota
	SearchSearching
	SearchSuccess
	SearchEmpty
	SearchError
)

func (s SearchStatus) String() string {
	switch s {
	case SearchSearching:
		return "searching"
	case SearchSuccess:
		return "success"
	case SearchEmpty:
		return "empty"
	case SearchError:
		return "failed"
	default:
		return "idle"
	}
}

// DetailStatus is the state of the detail flow
type DetailStatus int

const (
	DetailClosed DetailStatus = iota
	DetailLoading
	DetailLoaded
	DetailError
)

func (s DetailStatus) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailError:
		return "failed"
	default:
		return "closed"
	}
}

// Filters narrows a search by title type and release year
type Filters struct {
	Type domain.TypeFilter
	Year string
}

// IsZero returns true if no filter is set
func (f Filters) IsZero() bool {
	return f.Type == domain.TypeAny && f.Year == ""
}

// SearchRequest describes a search the caller must perform
type SearchRequest struct {
	Seq   uint64
	Query domain.SearchQuery
}

// DetailRequest describes a detail lookup the caller must perform
type DetailRequest struct {
	Seq  uint64
	ID   string
	Plot domain.PlotVerbosity
}

// State is everything the explorer page renders from
type State struct {
	// Search flow
	Query       string  // Last accepted search text; empty until the first submission
	Filters     Filters // Pending filters, edited by the filter bar
	Applied     Filters // Filters of the most recently dispatched search
	Page        int     // Page of the results currently shown
	Results     domain.SearchResultPage
	HasSearched bool // Results section is visible
	Search      SearchStatus
	SearchMsg   string // Inline status text for the search flow

	// Detail flow
	SelectedID string
	Detail     *domain.TitleDetail
	DetailStat DetailStatus
	DetailMsg  string

	// Recently submitted queries, most recent first
	History []string

	// Plot verbosity requested for the detail view
	Plot domain.PlotVerbosity

	searchSeq uint64
	detailSeq uint64
}

// New returns the empty state a page starts with
func New(plot domain.PlotVerbosity) State {
	if plot != domain.PlotShort {
		plot = domain.PlotFull
	}
	return State{
		Page: 1,
		Plot: plot,
	}
}

// IsSearching returns true while the latest search is in flight
func (s State) IsSearching() bool {
	return s.Search == SearchSearching
}

// TotalPages returns the page count of the last result
func (s State) TotalPages() int {
	return s.Results.TotalPages()
}

// PaginationVisible returns true when there is more than one page of shown results
func (s State) PaginationVisible() bool {
	return len(s.Results.Items) > 0 && s.TotalPages() > 1
}

// HasPrevPage returns true if a previous page exists
func (s State) HasPrevPage() bool {
	return s.Page > 1
}

// HasNextPage returns true if a following page exists
func (s State) HasNextPage() bool {
	return s.Page < s.TotalPages()
}

// PaginationLabel renders e.g. "Page 1 of 3 (25 results)"
func (s State) PaginationLabel() string {
	label := fmt.Sprintf("Page %d of %d", s.Page, s.TotalPages())
	if s.Results.TotalCount > 0 {
		label += fmt.Sprintf(" (%d results)", s.Results.TotalCount)
	}
	return label
}

// DetailOpen returns true while the detail overlay is shown
func (s State) DetailOpen() bool {
	return s.DetailStat != DetailClosed
}

// IsCurrentSearch returns true if req is the latest search issued
func (s State) IsCurrentSearch(req SearchRequest) bool {
	return req.Seq == s.searchSeq
}

// IsCurrentDetail returns true if req is the latest detail lookup issued
func (s State) IsCurrentDetail(req DetailRequest) bool {
	return req.Seq == s.detailSeq
}
