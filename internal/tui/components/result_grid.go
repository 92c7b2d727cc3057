package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/search"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// Card layout
const (
	CardContentLines = 3
	CardHeight       = CardContentLines + 2 // border
	CardGap          = 1
	MinCardWidth     = 16
)

// Poster markers
const (
	PosterLabel   = "▣ poster"
	NoPosterLabel = "No poster"
)

// ResultGrid shows one page of results as cards
type ResultGrid struct {
	items   []domain.SearchResultItem
	index   *search.PageIndex
	matches []search.Match // Visible cards in order

	filterActive bool
	filterInput  textinput.Model

	cursor    int
	rowOffset int
	columns   int
	width     int
	height    int
	focused   bool
}

// NewResultGrid creates a grid with the given number of columns
func NewResultGrid(columns int) ResultGrid {
	if columns < 1 {
		columns = 1
	}
	ti := textinput.New()
	ti.Placeholder = "filter this page..."
	ti.CharLimit = 50
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return ResultGrid{
		columns:     columns,
		filterInput: ti,
		index:       search.NewPageIndex(nil),
	}
}

// SetItems replaces the page shown. Cursor and local filter are reset.
func (g *ResultGrid) SetItems(items []domain.SearchResultItem) {
	g.items = items
	g.index = search.NewPageIndex(items)
	g.cursor = 0
	g.rowOffset = 0
	g.clearFilter()
}

// Items returns the full page
func (g ResultGrid) Items() []domain.SearchResultItem {
	return g.items
}

// SetSize updates the component dimensions
func (g *ResultGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *ResultGrid) SetFocused(focused bool) {
	g.focused = focused
	if !focused {
		g.filterInput.Blur()
	}
}

// IsFocused returns true if the grid has focus
func (g ResultGrid) IsFocused() bool {
	return g.focused
}

// IsFiltering returns true if a local filter is applied
func (g ResultGrid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true while the filter input has focus
func (g ResultGrid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// Cursor returns the cursor position among visible cards
func (g ResultGrid) Cursor() int {
	return g.cursor
}

// VisibleCount returns the number of cards currently shown
func (g ResultGrid) VisibleCount() int {
	if g.filterActive {
		return len(g.matches)
	}
	return len(g.items)
}

// Selected returns the item under the cursor
func (g ResultGrid) Selected() (domain.SearchResultItem, bool) {
	if g.cursor < 0 || g.cursor >= g.VisibleCount() {
		return domain.SearchResultItem{}, false
	}
	if g.filterActive {
		return g.matches[g.cursor].Item, true
	}
	return g.items[g.cursor], true
}

// Update handles messages. selected is true when the user opened the card under the cursor.
func (g ResultGrid) Update(msg tea.Msg) (grid ResultGrid, cmd tea.Cmd, selected bool) {
	if !g.focused {
		return g, nil, false
	}

	// Typing into the filter
	if g.IsFilterTyping() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				g.clearFilter()
				return g, nil, false
			case "enter":
				// Accept filter, blur input to allow navigation
				g.filterInput.Blur()
				return g, nil, false
			case "backspace":
				if g.filterInput.Value() == "" {
					g.clearFilter()
					return g, nil, false
				}
			}
		}
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		return g, cmd, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil, false
	}

	switch {
	case key.Matches(keyMsg, ResultGridKeys.Filter):
		g.filterActive = true
		g.applyFilter()
		return g, g.filterInput.Focus(), false
	case key.Matches(keyMsg, ResultGridKeys.Escape):
		if g.filterActive {
			g.clearFilter()
		}
		return g, nil, false
	}

	count := g.VisibleCount()
	if count == 0 {
		return g, nil, false
	}

	switch {
	case key.Matches(keyMsg, ResultGridKeys.Enter):
		return g, nil, true
	case key.Matches(keyMsg, ResultGridKeys.Left):
		if g.cursor%g.columns > 0 {
			g.cursor--
		}
	case key.Matches(keyMsg, ResultGridKeys.Right):
		if g.cursor%g.columns < g.columns-1 && g.cursor < count-1 {
			g.cursor++
		}
	case key.Matches(keyMsg, ResultGridKeys.Up):
		if g.cursor-g.columns >= 0 {
			g.cursor -= g.columns
		}
	case key.Matches(keyMsg, ResultGridKeys.Down):
		if g.cursor+g.columns < count {
			g.cursor += g.columns
		} else if g.cursor/g.columns < (count-1)/g.columns {
			// Partial last row
			g.cursor = count - 1
		}
	case key.Matches(keyMsg, ResultGridKeys.Home):
		g.cursor = 0
	case key.Matches(keyMsg, ResultGridKeys.End):
		g.cursor = count - 1
	}
	g.ensureVisible()
	return g, nil, false
}

func (g *ResultGrid) applyFilter() {
	g.matches = g.index.Filter(g.filterInput.Value())
	g.cursor = 0
	g.rowOffset = 0
}

func (g *ResultGrid) clearFilter() {
	g.filterActive = false
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.matches = nil
	g.cursor = 0
	g.rowOffset = 0
}

// visibleRows returns how many rows of cards fit
func (g ResultGrid) visibleRows() int {
	h := g.height
	if g.filterActive {
		h--
	}
	rows := h / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *ResultGrid) ensureVisible() {
	row := g.cursor / g.columns
	rows := g.visibleRows()
	if row < g.rowOffset {
		g.rowOffset = row
	}
	if row >= g.rowOffset+rows {
		g.rowOffset = row - rows + 1
	}
}

// cardWidth returns the outer width of one card
func (g ResultGrid) cardWidth() int {
	w := (g.width - CardGap*(g.columns-1)) / g.columns
	if w < MinCardWidth {
		w = MinCardWidth
	}
	return w
}

// View renders the component
func (g ResultGrid) View() string {
	var sections []string

	if g.filterActive {
		line := g.filterInput.View()
		if !g.IsFilterTyping() {
			line = styles.FilterPromptStyle.Render("/ ") + styles.AccentStyle.Render(g.filterInput.Value())
		}
		line += styles.DimStyle.Render(fmt.Sprintf("  %d/%d", len(g.matches), len(g.items)))
		sections = append(sections, line)
	}

	count := g.VisibleCount()
	if count == 0 {
		if g.filterActive {
			sections = append(sections, styles.DimStyle.Render("No matches on this page"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	cw := g.cardWidth()
	firstRow := g.rowOffset
	lastRow := firstRow + g.visibleRows()
	totalRows := (count + g.columns - 1) / g.columns
	if lastRow > totalRows {
		lastRow = totalRows
	}

	for row := firstRow; row < lastRow; row++ {
		var cards []string
		for col := 0; col < g.columns; col++ {
			i := row*g.columns + col
			if i >= count {
				break
			}
			if col > 0 {
				cards = append(cards, strings.Repeat(" ", CardGap))
			}
			cards = append(cards, g.renderCard(i, cw))
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCard renders visible card i at the given outer width
func (g ResultGrid) renderCard(i, width int) string {
	var item domain.SearchResultItem
	var matched []int
	if g.filterActive {
		item = g.matches[i].Item
		matched = g.matches[i].MatchedIndexes
	} else {
		item = g.items[i]
	}

	style := styles.CardStyle
	titleBase := styles.TitleStyle
	if g.focused && i == g.cursor {
		style = styles.CardSelectedStyle
		titleBase = styles.AccentStyle.Bold(true)
	}
	// Width covers content and padding; the border is drawn outside it
	inner := width - style.GetHorizontalBorderSize()
	text := inner - style.GetHorizontalPadding()
	if text < 1 {
		text = 1
	}

	title := styles.Highlight(styles.Truncate(item.Title, text), matched, titleBase)

	meta := styles.SubtitleStyle.Render(domain.OrFallback(item.Year, "?"))
	if item.Type != "" {
		meta += " " + styles.DimBadgeStyle.Render(item.Type)
	}

	return style.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, title, meta, posterMarker(item)))
}

// posterMarker renders the poster indicator shared by cards and the detail overlay
func posterMarker(item domain.SearchResultItem) string {
	if !item.HasPoster() {
		return styles.DimStyle.Italic(true).Render(NoPosterLabel)
	}
	return styles.SuccessStyle.Render(PosterLabel)
}
