package explorer

import (
	"strings"

	"github.com/mmcdole/nextep/internal/domain"
)

// MaxHistory bounds the number of remembered queries
const MaxHistory = 20

// === Search intents ===

// Submit validates text and, if it passes, starts a search for page 1 with the pending filters.
// A rejected submission issues no request, hides the results section and
// invalidates any search still in flight.
func Submit(s State, text string) (State, *SearchRequest) {
	trimmed, err := domain.ValidateTitle(text)
	if err != nil {
		s.searchSeq++
		s.HasSearched = false
		s.Search = SearchIdle
		s.SearchMsg = validationMessage(err)
		return s, nil
	}

	s.Query = trimmed
	s.History = remember(s.History, trimmed)
	return performSearch(s, trimmed, 1, s.Filters)
}

// SetType changes the pending type filter without searching
func SetType(s State, t domain.TypeFilter) State {
	if !t.Valid() {
		return s
	}
	s.Filters.Type = t
	return s
}

// SetYear changes the pending year filter without searching.
// Input beyond four characters is dropped.
func SetYear(s State, year string) State {
	s.Filters.Year = domain.TruncateYear(year)
	return s
}

// ApplyFilters re-runs the submitted query from page 1 with the pending filters.
// Without a submitted query it does nothing.
func ApplyFilters(s State) (State, *SearchRequest) {
	if s.Query == "" {
		return s, nil
	}
	return performSearch(s, s.Query, 1, s.Filters)
}

// ResetFilters clears the pending filters and re-runs the submitted query from page 1
func ResetFilters(s State) (State, *SearchRequest) {
	s.Filters = Filters{}
	if s.Query == "" {
		return s, nil
	}
	return performSearch(s, s.Query, 1, s.Filters)
}

// ChangePage re-runs the submitted query at page with the filters of the last search.
// It is ignored when nothing was submitted yet or page is out of range.
func ChangePage(s State, page int) (State, *SearchRequest) {
	if s.Query == "" || page < 1 || page > s.TotalPages() {
		return s, nil
	}
	return performSearch(s, s.Query, page, s.Applied)
}

// NextPage moves one page forward
func NextPage(s State) (State, *SearchRequest) {
	return ChangePage(s, s.Page+1)
}

// PrevPage moves one page back
func PrevPage(s State) (State, *SearchRequest) {
	return ChangePage(s, s.Page-1)
}

// performSearch is the single entry point every search intent routes through
func performSearch(s State, text string, page int, filters Filters) (State, *SearchRequest) {
	q, err := domain.NewSearchQuery(text, page, filters.Type, filters.Year)
	if err != nil {
		s.searchSeq++
		s.HasSearched = false
		s.Search = SearchIdle
		s.SearchMsg = validationMessage(err)
		return s, nil
	}

	s.searchSeq++
	s.HasSearched = true
	s.Search = SearchSearching
	s.SearchMsg = ""
	s.Applied = Filters{Type: q.Type, Year: q.Year}

	return s, &SearchRequest{Seq: s.searchSeq, Query: q}
}

// === Search outcomes ===

// SearchSucceeded applies a search response if req is still the latest search
func SearchSucceeded(s State, req SearchRequest, page *domain.SearchResultPage) State {
	if !s.IsCurrentSearch(req) {
		return s
	}

	s.Results = domain.SearchResultPage{}
	if page != nil {
		s.Results = *page
	}
	s.Page = req.Query.Page

	if s.Results.TotalCount == 0 {
		s.Search = SearchEmpty
		s.SearchMsg = MsgNoResults
	} else {
		s.Search = SearchSuccess
		s.SearchMsg = ""
	}
	return s
}

// SearchFailed applies a search error if req is still the latest search.
// OMDb's "not found" failure is shown as an empty result, not an error.
func SearchFailed(s State, req SearchRequest, err error) State {
	if !s.IsCurrentSearch(req) {
		return s
	}

	s.Results = domain.SearchResultPage{}
	s.Search, s.SearchMsg = searchFailure(err)
	return s
}

// === Detail intents and outcomes ===

// Select opens the detail overlay for id and starts loading it
func Select(s State, id string) (State, *DetailRequest) {
	if id == "" {
		return s, nil
	}

	s.detailSeq++
	s.SelectedID = id
	s.Detail = nil
	s.DetailStat = DetailLoading
	s.DetailMsg = ""

	return s, &DetailRequest{Seq: s.detailSeq, ID: id, Plot: s.Plot}
}

// DetailSucceeded applies a detail response if req is still current and the overlay is open
func DetailSucceeded(s State, req DetailRequest, detail *domain.TitleDetail) State {
	if !s.IsCurrentDetail(req) || s.DetailStat == DetailClosed {
		return s
	}
	s.Detail = detail
	s.DetailStat = DetailLoaded
	s.DetailMsg = ""
	return s
}

// DetailFailed applies a detail error if req is still current and the overlay is open.
// The upstream text is never shown for this flow.
func DetailFailed(s State, req DetailRequest, _ error) State {
	if !s.IsCurrentDetail(req) || s.DetailStat == DetailClosed {
		return s
	}
	s.Detail = nil
	s.DetailStat = DetailError
	s.DetailMsg = MsgDetailFailed
	return s
}

// Dismiss closes the detail overlay. A response still in flight is discarded when it lands.
func Dismiss(s State) State {
	s.detailSeq++
	s.SelectedID = ""
	s.Detail = nil
	s.DetailStat = DetailClosed
	s.DetailMsg = ""
	return s
}

// remember returns a new history with query first, dropping case-insensitive duplicates
func remember(history []string, query string) []string {
	next := make([]string, 0, len(history)+1)
	next = append(next, query)
	for _, h := range history {
		if strings.EqualFold(h, query) {
			continue
		}
		if len(next) == MaxHistory {
			break
		}
		next = append(next, h)
	}
	return next
}
