package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/nextep/internal/tui/styles"
)

// Pagination renders the previous/next bar under the results
type Pagination struct {
	Label   string // e.g. "Page 2 of 3 (25 results)"
	HasPrev bool
	HasNext bool
	Busy    bool
	width   int
}

// SetWidth updates the component width
func (p *Pagination) SetWidth(width int) {
	p.width = width
}

// View renders the component
func (p Pagination) View() string {
	prev := styles.DimStyle.Render("‹ prev [p]")
	if p.HasPrev && !p.Busy {
		prev = styles.AccentStyle.Render("‹ prev [p]")
	}
	next := styles.DimStyle.Render("[n] next ›")
	if p.HasNext && !p.Busy {
		next = styles.AccentStyle.Render("[n] next ›")
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		prev, "   ", styles.SubtitleStyle.Render(p.Label), "   ", next)

	if p.width <= 0 {
		return bar
	}
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, bar)
}
