package components

import "github.com/charmbracelet/bubbles/key"

// SearchBarKeyMap defines key bindings for the search bar
type SearchBarKeyMap struct {
	Submit key.Binding
	Older  key.Binding
	Newer  key.Binding
	Clear  key.Binding
}

// DefaultSearchBarKeyMap returns the default search bar key bindings
func DefaultSearchBarKeyMap() SearchBarKeyMap {
	return SearchBarKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Older: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "recall"),
		),
		Newer: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "recall"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}

// FilterBarKeyMap defines key bindings for the filter bar
type FilterBarKeyMap struct {
	PrevType key.Binding
	NextType key.Binding
	Apply    key.Binding
}

// DefaultFilterBarKeyMap returns the default filter bar key bindings
func DefaultFilterBarKeyMap() FilterBarKeyMap {
	return FilterBarKeyMap{
		PrevType: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev type"),
		),
		NextType: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next type"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filters"),
		),
	}
}

// ResultGridKeyMap defines key bindings for result grid navigation
type ResultGridKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Home   key.Binding
	End    key.Binding
	Enter  key.Binding
	Filter key.Binding
	Escape key.Binding
}

// DefaultResultGridKeyMap returns the default result grid key bindings
func DefaultResultGridKeyMap() ResultGridKeyMap {
	return ResultGridKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter page"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// DetailModalKeyMap defines key bindings for the detail overlay
type DetailModalKeyMap struct {
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultDetailModalKeyMap returns the default detail overlay key bindings
func DefaultDetailModalKeyMap() DetailModalKeyMap {
	return DetailModalKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "backspace"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
	}
}

// Package-level key map instances
var (
	SearchBarKeys   = DefaultSearchBarKeyMap()
	FilterBarKeys   = DefaultFilterBarKeyMap()
	ResultGridKeys  = DefaultResultGridKeyMap()
	DetailModalKeys = DefaultDetailModalKeyMap()
)
