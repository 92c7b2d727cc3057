package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// Year input bounds, matching the range OMDb knows titles for
const (
	MinFilterYear = 1900
	MaxFilterYear = 2099
)

// FilterField identifies the focused part of the filter bar
type FilterField int

const (
	FilterFieldNone FilterField = iota
	FilterFieldType
	FilterFieldYear
)

// FilterIntent is what the user asked the filter bar to do
type FilterIntent int

const (
	FilterIntentNone FilterIntent = iota
	FilterIntentType              // Type selection changed
	FilterIntentYear              // Year text changed
	FilterIntentApply
)

// FilterAction is returned from FilterBar.Update
type FilterAction struct {
	Intent FilterIntent
	Type   domain.TypeFilter
	Year   string
}

// FilterBar edits the pending type and year filters
type FilterBar struct {
	typ   domain.TypeFilter
	year  textinput.Model
	field FilterField
	width int
	dirty bool // Pending filters differ from the applied ones
}

// NewFilterBar creates a new filter bar
func NewFilterBar() FilterBar {
	ti := textinput.New()
	ti.Placeholder = "year"
	ti.CharLimit = domain.MaxYearLength
	ti.Width = domain.MaxYearLength + 1
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return FilterBar{year: ti}
}

// Focus moves keyboard focus to field
func (f *FilterBar) Focus(field FilterField) tea.Cmd {
	f.field = field
	if field == FilterFieldYear {
		return f.year.Focus()
	}
	f.year.Blur()
	return nil
}

// Blur removes keyboard focus
func (f *FilterBar) Blur() {
	f.field = FilterFieldNone
	f.year.Blur()
}

// Field returns the focused field
func (f FilterBar) Field() FilterField {
	return f.field
}

// SetFilters syncs the displayed values with the pending filters
func (f *FilterBar) SetFilters(t domain.TypeFilter, year string) {
	f.typ = t
	if f.year.Value() != year {
		f.year.SetValue(year)
		f.year.CursorEnd()
	}
}

// SetDirty marks whether the pending filters still need applying
func (f *FilterBar) SetDirty(dirty bool) {
	f.dirty = dirty
}

// SetWidth updates the component width
func (f *FilterBar) SetWidth(width int) {
	f.width = width
}

// Update handles messages
func (f FilterBar) Update(msg tea.Msg) (FilterBar, tea.Cmd, FilterAction) {
	if f.field == FilterFieldNone {
		return f, nil, FilterAction{}
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, FilterBarKeys.Apply) {
			return f, nil, FilterAction{Intent: FilterIntentApply}
		}

		if f.field == FilterFieldType {
			switch {
			case key.Matches(msg, FilterBarKeys.PrevType):
				f.typ = f.typ.Prev()
				return f, nil, FilterAction{Intent: FilterIntentType, Type: f.typ}
			case key.Matches(msg, FilterBarKeys.NextType):
				f.typ = f.typ.Next()
				return f, nil, FilterAction{Intent: FilterIntentType, Type: f.typ}
			}
			return f, nil, FilterAction{}
		}
	}

	if f.field != FilterFieldYear {
		return f, nil, FilterAction{}
	}

	before := f.year.Value()
	var cmd tea.Cmd
	f.year, cmd = f.year.Update(msg)
	if digits := DigitsOnly(f.year.Value()); digits != f.year.Value() {
		f.year.SetValue(digits)
		f.year.CursorEnd()
	}
	if f.year.Value() == before {
		return f, cmd, FilterAction{}
	}
	return f, cmd, FilterAction{Intent: FilterIntentYear, Year: f.year.Value()}
}

// DigitsOnly strips everything but ASCII digits from s
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// YearInRange reports whether a complete four-digit year lies in the accepted range.
// Partial input is not judged.
func YearInRange(year string) bool {
	if len(year) < domain.MaxYearLength {
		return true
	}
	n := 0
	for _, r := range year {
		n = n*10 + int(r-'0')
	}
	return n >= MinFilterYear && n <= MaxFilterYear
}

// View renders the component
func (f FilterBar) View() string {
	var b strings.Builder

	label := styles.LabelStyle.Render("Type ")
	if f.field == FilterFieldType {
		label = styles.FilterPromptStyle.Render("Type ")
	}
	b.WriteString(label)
	for _, t := range domain.TypeFilters {
		if t == f.typ {
			b.WriteString(styles.SelectedOptionStyle.Render(t.Label()))
		} else {
			b.WriteString(styles.OptionStyle.Render(t.Label()))
		}
	}

	b.WriteString("   ")
	yearLabel := styles.LabelStyle.Render("Year ")
	if f.field == FilterFieldYear {
		yearLabel = styles.FilterPromptStyle.Render("Year ")
	}
	b.WriteString(yearLabel)
	b.WriteString(f.year.View())
	if !YearInRange(f.year.Value()) {
		b.WriteString(" " + styles.ErrorStyle.Render("1900-2099"))
	}

	if f.dirty {
		b.WriteString("   " + styles.AccentStyle.Render("enter to apply"))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
