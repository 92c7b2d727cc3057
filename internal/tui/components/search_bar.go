package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/nextep/internal/search"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// SearchBarPlaceholder is shown while the input is empty
const SearchBarPlaceholder = "Search by title, e.g. Inception, Batman, Oppenheimer"

// SearchBar is the title input with history recall
type SearchBar struct {
	input   textinput.Model
	focused bool
	width   int

	// Busy state, rendered as a spinner after the input
	searching    bool
	spinnerFrame int

	// Recall state. recallIdx is -1 when not recalling.
	history     []string
	suggestions []string
	recallIdx   int
	draft       string
}

// NewSearchBar creates a new search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = SearchBarPlaceholder
	// Longer than the accepted maximum so over-long titles reach validation
	ti.CharLimit = 100
	ti.Width = 60
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{
		input:     ti,
		recallIdx: -1,
	}
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchBar) Blur() {
	s.focused = false
	s.input.Blur()
	s.resetRecall()
}

// IsFocused returns true if the input has focus
func (s SearchBar) IsFocused() bool {
	return s.focused
}

// Value returns the raw input text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the input text
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

// SetHistory sets the queries available for recall, most recent first
func (s *SearchBar) SetHistory(history []string) {
	s.history = history
}

// SetSearching toggles the busy spinner
func (s *SearchBar) SetSearching(searching bool, frame int) {
	s.searching = searching
	s.spinnerFrame = frame
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	w := width - 8
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}

// Update handles messages. submitted is true when the user asked to search.
func (s SearchBar) Update(msg tea.Msg) (bar SearchBar, cmd tea.Cmd, submitted bool) {
	if !s.focused {
		return s, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, SearchBarKeys.Submit):
			s.resetRecall()
			return s, nil, true

		case key.Matches(msg, SearchBarKeys.Older):
			s.recall(1)
			return s, nil, false

		case key.Matches(msg, SearchBarKeys.Newer):
			s.recall(-1)
			return s, nil, false

		case key.Matches(msg, SearchBarKeys.Clear):
			if s.recallIdx >= 0 {
				s.SetValue(s.draft)
				s.resetRecall()
				return s, nil, false
			}
			s.SetValue("")
			return s, nil, false
		}
		s.resetRecall()
	}

	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// recall steps through history entries matching the text typed before recall began
func (s *SearchBar) recall(step int) {
	if s.recallIdx < 0 {
		if step < 0 {
			return
		}
		s.draft = s.input.Value()
		s.suggestions = search.SuggestQueries(s.draft, s.history)
	}
	if len(s.suggestions) == 0 {
		s.resetRecall()
		return
	}

	next := s.recallIdx + step
	switch {
	case next < 0:
		s.SetValue(s.draft)
		s.resetRecall()
		return
	case next >= len(s.suggestions):
		next = len(s.suggestions) - 1
	}
	s.recallIdx = next
	s.SetValue(s.suggestions[next])
}

func (s *SearchBar) resetRecall() {
	s.recallIdx = -1
	s.suggestions = nil
	s.draft = ""
}

// Recalling returns true while the user is stepping through history
func (s SearchBar) Recalling() bool {
	return s.recallIdx >= 0
}

// View renders the component
func (s SearchBar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}

	line := s.input.View()
	if s.searching {
		line += " " + styles.Spinner(s.spinnerFrame)
	}

	content := line
	if s.recallIdx >= 0 && len(s.suggestions) > 0 {
		parts := make([]string, len(s.suggestions))
		for i, sug := range s.suggestions {
			if i == s.recallIdx {
				parts[i] = styles.AccentStyle.Render(sug)
			} else {
				parts[i] = styles.DimStyle.Render(sug)
			}
		}
		content += "\n" + styles.DimStyle.Render("recent: ") + strings.Join(parts, styles.DimStyle.Render(" · "))
	}

	frameW, _ := style.GetFrameSize()
	w := s.width - frameW
	if w < 1 {
		return style.Render(content)
	}
	return style.Width(w).Render(content)
}
