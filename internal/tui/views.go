package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/nextep/internal/explorer"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// AppTitle is shown in the header
const AppTitle = "nextep"

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	// The detail overlay replaces the page while open
	if m.Detail.IsVisible() {
		return m.Detail.View()
	}

	sections := []string{
		m.renderHeader(),
		m.SearchBar.View(),
		m.FilterBar.View(),
		m.renderStatus(),
	}

	if m.State.HasSearched {
		if len(m.State.Results.Items) > 0 {
			sections = append(sections, m.Grid.View())
		}
		if m.State.PaginationVisible() {
			sections = append(sections, m.Pagination.View())
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	body = lipgloss.NewStyle().PaddingLeft(HorizontalMargin).Render(body)

	// Pin the footer to the last line
	gap := m.Height - lipgloss.Height(body) - FooterHeight
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := styles.AccentStyle.Bold(true).Render(AppTitle)
	sub := styles.DimStyle.Render(" · movie & series explorer powered by OMDb")
	return title + sub
}

// renderStatus renders the inline status of the search flow
func (m Model) renderStatus() string {
	s := m.State

	if !s.HasSearched {
		if s.SearchMsg != "" {
			return styles.ErrorStyle.Render(s.SearchMsg)
		}
		return styles.DimStyle.Render("Type a title and press enter to search.")
	}

	switch s.Search {
	case explorer.SearchSearching:
		return styles.Spinner(m.SpinnerFrame) + " " + styles.DimStyle.Render(fmt.Sprintf("Searching for %q...", s.Query))
	case explorer.SearchEmpty:
		return styles.DimStyle.Render(s.SearchMsg)
	case explorer.SearchError:
		return styles.ErrorStyle.Render(s.SearchMsg)
	case explorer.SearchSuccess:
		label := fmt.Sprintf("Results for %q", s.Query)
		if !s.Applied.IsZero() {
			var parts []string
			if s.Applied.Type != "" {
				parts = append(parts, s.Applied.Type.Label())
			}
			if s.Applied.Year != "" {
				parts = append(parts, s.Applied.Year)
			}
			label += " · " + strings.Join(parts, ", ")
		}
		return styles.SubtitleStyle.Render(label)
	}
	return ""
}

func (m Model) renderFooter() string {
	return lipgloss.NewStyle().PaddingLeft(HorizontalMargin).Render(m.help.ShortHelpView(Keys.ShortHelp()))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keyboard shortcuts"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(Keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("Press any key to close"))

	modal := styles.ModalStyle.Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal)
}
