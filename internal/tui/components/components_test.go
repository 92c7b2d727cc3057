package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/nextep/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func batmanItems() []domain.SearchResultItem {
	return []domain.SearchResultItem{
		{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Type: "movie"},
		{ID: "tt1877830", Title: "The Batman", Year: "2022", Type: "movie"},
		{ID: "tt0112462", Title: "Batman Forever", Year: "1995", Type: "movie"},
		{ID: "tt0118688", Title: "Batman & Robin", Year: "1997", Type: "movie"},
		{ID: "tt0103776", Title: "Batman Returns", Year: "1992", Type: "movie"},
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "1999", DigitsOnly("19a9x9"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "", DigitsOnly("١٩٩٩"))
}

func TestYearInRange(t *testing.T) {
	tests := []struct {
		year string
		want bool
	}{
		{"", true},
		{"18", true},
		{"1899", false},
		{"1900", true},
		{"1999", true},
		{"2099", true},
		{"2100", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, YearInRange(tt.year), tt.year)
	}
}

func TestFilterBar_TypeCycles(t *testing.T) {
	f := NewFilterBar()
	f.Focus(FilterFieldType)

	f, _, action := f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, FilterIntentType, action.Intent)
	assert.Equal(t, domain.TypeMovie, action.Type)

	f.SetFilters(domain.TypeAny, "")
	_, _, action = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.TypeEpisode, action.Type)
}

func TestFilterBar_YearStripsNonDigits(t *testing.T) {
	f := NewFilterBar()
	f.Focus(FilterFieldYear)

	f, _, action := f.Update(runes("2"))
	assert.Equal(t, FilterIntentYear, action.Intent)
	assert.Equal(t, "2", action.Year)

	f, _, action = f.Update(runes("x"))
	assert.Equal(t, FilterIntentNone, action.Intent)

	_, _, action = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FilterIntentApply, action.Intent)
}

func TestFilterBar_IgnoresInputWithoutFocus(t *testing.T) {
	f := NewFilterBar()
	_, _, action := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FilterIntentNone, action.Intent)
}

func TestResultGrid_Navigation(t *testing.T) {
	g := NewResultGrid(2)
	g.SetSize(80, 40)
	g.SetItems(batmanItems())
	g.SetFocused(true)

	g, _, _ = g.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, g.Cursor())
	g, _, _ = g.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, g.Cursor())

	// Partial last row
	g, _, _ = g.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 4, g.Cursor())

	g, _, selected := g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, selected)
	item, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "Batman Returns", item.Title)
}

func TestResultGrid_IgnoresKeysWhenBlurred(t *testing.T) {
	g := NewResultGrid(2)
	g.SetItems(batmanItems())

	g, _, selected := g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, selected)
	assert.Equal(t, 0, g.Cursor())
}

func TestResultGrid_LocalFilter(t *testing.T) {
	g := NewResultGrid(2)
	g.SetSize(80, 40)
	g.SetItems(batmanItems())
	g.SetFocused(true)

	g, _, _ = g.Update(runes("/"))
	require.True(t, g.IsFilterTyping())
	assert.Equal(t, 5, g.VisibleCount())

	for _, r := range "ret" {
		g, _, _ = g.Update(runes(string(r)))
	}
	assert.Equal(t, 1, g.VisibleCount())

	// enter accepts the filter, the next enter opens the card
	g, _, selected := g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, selected)
	assert.False(t, g.IsFilterTyping())
	assert.True(t, g.IsFiltering())

	g, _, selected = g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, selected)
	item, _ := g.Selected()
	assert.Equal(t, "tt0103776", item.ID)

	g, _, _ = g.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, g.IsFiltering())
	assert.Equal(t, 5, g.VisibleCount())
}

func TestResultGrid_SetItemsClearsFilter(t *testing.T) {
	g := NewResultGrid(3)
	g.SetItems(batmanItems())
	g.SetFocused(true)
	g, _, _ = g.Update(runes("/"))
	g, _, _ = g.Update(runes("z"))
	assert.Equal(t, 0, g.VisibleCount())

	g.SetItems(batmanItems()[:2])
	assert.False(t, g.IsFiltering())
	assert.Equal(t, 2, g.VisibleCount())
}

func TestResultGrid_ViewShowsPosterMarker(t *testing.T) {
	items := batmanItems()[:2]
	items[0].PosterURL = "https://m.media-amazon.com/images/begins.jpg"

	g := NewResultGrid(2)
	g.SetSize(80, 20)
	g.SetItems(items)

	view := g.View()
	assert.Contains(t, view, "Batman Begins")
	assert.Contains(t, view, PosterLabel)
	assert.Contains(t, view, NoPosterLabel)
}

func TestPagination_View(t *testing.T) {
	p := Pagination{Label: "Page 1 of 3 (25 results)", HasNext: true}
	p.SetWidth(60)

	view := p.View()
	assert.Contains(t, view, "Page 1 of 3 (25 results)")
	assert.Contains(t, view, "next")
	assert.Contains(t, view, "prev")
}

func TestRenderDetail(t *testing.T) {
	d := domain.TitleDetail{
		SearchResultItem: domain.SearchResultItem{ID: "tt0372784", Title: "Batman Begins", Year: "2005", Type: "movie"},
		Runtime:          "140 min",
		Rated:            domain.NotAvailable,
		IMDbRating:       "8.2",
		IMDbVotes:        "1,600,000",
		Ratings:          []domain.ExternalRating{{Source: "Metacritic", Value: "70/100"}},
		Plot:             "A young Bruce Wayne travels to the Far East.",
	}

	header := RenderDetailHeader(d, 80)
	assert.Contains(t, header, "Batman Begins")
	assert.Contains(t, header, "2005 · movie · 140 min")
	assert.NotContains(t, header, domain.NotAvailable)

	body := RenderDetailBody(d, 80)
	assert.Contains(t, body, "★ 8.2/10 (1,600,000 votes)")
	assert.Contains(t, body, "70/100")
	assert.Contains(t, body, "A young Bruce Wayne")
	assert.Contains(t, body, NoDataLabel) // Director etc. missing
	assert.NotContains(t, body, "Seasons")
}

func TestRenderDetailBody_SeriesShowsSeasons(t *testing.T) {
	d := domain.TitleDetail{
		SearchResultItem: domain.SearchResultItem{Title: "Breaking Bad", Type: "series"},
		TotalSeasons:     "5",
	}
	assert.Contains(t, RenderDetailBody(d, 80), "Seasons")
}

func TestRenderDetailHeader_PosterLine(t *testing.T) {
	d := domain.TitleDetail{
		SearchResultItem: domain.SearchResultItem{
			Title:     "Batman Begins",
			Year:      "2005",
			PosterURL: "https://m.media-amazon.com/images/begins.jpg",
		},
	}

	header := RenderDetailHeader(d, 80)
	assert.Contains(t, header, PosterLabel)
	assert.Contains(t, header, "https://m.media-amazon.com/images/begins.jpg")
	assert.NotContains(t, header, NoPosterLabel)

	d.PosterURL = ""
	header = RenderDetailHeader(d, 80)
	assert.Contains(t, header, NoPosterLabel)
	assert.NotContains(t, header, PosterLabel)
}
