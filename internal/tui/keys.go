package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mmcdole/nextep/internal/tui/components"
)

// KeyMap defines the application-level key bindings
type KeyMap struct {
	// Focus
	NextFocus   key.Binding
	PrevFocus   key.Binding
	FocusSearch key.Binding

	// Actions
	NextPage     key.Binding
	PrevPage     key.Binding
	ResetFilters key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	Help         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("f", "s"),
			key.WithHelp("f", "search"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown", "]"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup", "["),
			key.WithHelp("p", "prev page"),
		),
		ResetFilters: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset filters"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, components.ResultGridKeys.Enter, k.NextPage, k.PrevPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	grid := components.ResultGridKeys
	bar := components.SearchBarKeys
	filters := components.FilterBarKeys
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.FocusSearch, bar.Submit, bar.Older},
		{filters.PrevType, filters.NextType, filters.Apply, k.ResetFilters},
		{grid.Up, grid.Down, grid.Left, grid.Right, grid.Enter, grid.Filter},
		{k.NextPage, k.PrevPage, k.Help, k.Quit, k.ForceQuit},
	}
}
