package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/nextep/internal/domain"
)

var page = []domain.SearchResultItem{
	{ID: "tt0372784", Title: "Batman Begins"},
	{ID: "tt0096895", Title: "Batman"},
	{ID: "tt2975590", Title: "Batman v Superman: Dawn of Justice"},
	{ID: "tt0112462", Title: "Batman Forever"},
	{ID: "tt0103776", Title: "Batman Returns"},
}

func TestPageIndex_FilterEmptyQueryKeepsOrder(t *testing.T) {
	matches := NewPageIndex(page).Filter("  ")
	require.Len(t, matches, len(page))
	for i, m := range matches {
		assert.Equal(t, i, m.Index)
		assert.Equal(t, page[i].ID, m.Item.ID)
		assert.Empty(t, m.MatchedIndexes)
	}
}

func TestPageIndex_FilterNarrows(t *testing.T) {
	matches := NewPageIndex(page).Filter("ret")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Batman Returns", matches[0].Item.Title)
	assert.Equal(t, 4, matches[0].Index)

	for _, m := range matches {
		assert.NotEqual(t, "Batman", m.Item.Title)
	}
}

func TestPageIndex_FilterCaseInsensitive(t *testing.T) {
	matches := NewPageIndex(page).Filter("JUSTICE")
	require.Len(t, matches, 1)
	assert.Equal(t, "tt2975590", matches[0].Item.ID)
	assert.Len(t, matches[0].MatchedIndexes, len("justice"))
}

func TestPageIndex_FilterNoMatch(t *testing.T) {
	assert.Empty(t, NewPageIndex(page).Filter("xyzzy"))
}

func TestPageIndex_FilterHighlightsAreRunePositions(t *testing.T) {
	items := []domain.SearchResultItem{{ID: "tt1", Title: "Amélie"}}
	matches := NewPageIndex(items).Filter("lie")
	require.Len(t, matches, 1)
	assert.Equal(t, []int{3, 4, 5}, matches[0].MatchedIndexes)
}

func TestPageIndex_Source(t *testing.T) {
	idx := NewPageIndex(page)
	assert.Equal(t, len(page), idx.Len())
	assert.Equal(t, "batman begins", idx.String(0))
}

func TestSuggestQueries(t *testing.T) {
	history := []string{"The Dark Knight", "Batman Begins", "Heat", "Dark City"}

	got := SuggestQueries("dark", history)
	assert.Equal(t, []string{"Dark City", "The Dark Knight"}, got)
}

func TestSuggestQueries_BlankReturnsRecent(t *testing.T) {
	history := []string{"a", "b", "c", "d", "e", "f", "g"}
	got := SuggestQueries("", history)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)

	got[0] = "mutated"
	assert.Equal(t, "a", history[0], "the result must not alias history")
}

func TestSuggestQueries_SkipsExactRepeat(t *testing.T) {
	got := SuggestQueries("heat", []string{"Heat", "Heathers"})
	assert.Equal(t, []string{"Heathers"}, got)
}

func TestSuggestQueries_NoHistory(t *testing.T) {
	assert.Empty(t, SuggestQueries("alien", nil))
}
