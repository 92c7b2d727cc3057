package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/nextep/internal/explorer"
	"github.com/mmcdole/nextep/internal/tui/components"
)

// handleKeyMsg routes key input by overlay and focus
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes the help screen
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	// The detail overlay captures all input while open
	if m.Detail.IsVisible() {
		var closed bool
		var cmd tea.Cmd
		m.Detail, cmd, closed = m.Detail.Update(msg)
		if closed {
			m.State = explorer.Dismiss(m.State)
			m.syncComponents()
		}
		return m, cmd
	}

	if !m.isTyping() {
		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, Keys.Help):
			m.ShowHelp = true
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, Keys.NextFocus):
		return m, m.cycleFocus(1)
	case key.Matches(msg, Keys.PrevFocus):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, Keys.ResetFilters):
		if m.State.IsSearching() {
			return m, nil
		}
		var req *explorer.SearchRequest
		m.State, req = explorer.ResetFilters(m.State)
		return m, m.dispatchSearch(req)
	}

	switch m.Focus {
	case FocusSearch:
		return m.handleSearchKeys(msg)
	case FocusType, FocusYear:
		return m.handleFilterKeys(msg)
	case FocusResults:
		return m.handleResultKeys(msg)
	}
	return m, nil
}

// isTyping returns true when printable keys belong to a text input
func (m Model) isTyping() bool {
	switch m.Focus {
	case FocusSearch, FocusYear:
		return true
	case FocusResults:
		return m.Grid.IsFilterTyping()
	}
	return false
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.SearchBar, cmd, submitted = m.SearchBar.Update(msg)
	// The recall line changes the chrome height
	m.updateLayout()
	if !submitted {
		return m, cmd
	}

	var req *explorer.SearchRequest
	m.State, req = explorer.Submit(m.State, m.SearchBar.Value())
	if req == nil {
		m.logger.Debug("search rejected", "reason", m.State.SearchMsg)
	}
	return m, tea.Batch(cmd, m.dispatchSearch(req))
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var action components.FilterAction
	m.FilterBar, cmd, action = m.FilterBar.Update(msg)

	switch action.Intent {
	case components.FilterIntentType:
		m.State = explorer.SetType(m.State, action.Type)
		m.syncComponents()
	case components.FilterIntentYear:
		m.State = explorer.SetYear(m.State, action.Year)
		m.syncComponents()
	case components.FilterIntentApply:
		if m.State.IsSearching() {
			return m, cmd
		}
		var req *explorer.SearchRequest
		m.State, req = explorer.ApplyFilters(m.State)
		return m, tea.Batch(cmd, m.dispatchSearch(req))
	}
	return m, cmd
}

func (m Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.Grid.IsFilterTyping() {
		switch {
		case key.Matches(msg, Keys.FocusSearch):
			return m, m.setFocus(FocusSearch)
		case key.Matches(msg, Keys.NextPage):
			return m.changePage(explorer.NextPage)
		case key.Matches(msg, Keys.PrevPage):
			return m.changePage(explorer.PrevPage)
		case key.Matches(msg, components.ResultGridKeys.Escape) && !m.Grid.IsFiltering():
			return m, m.setFocus(FocusSearch)
		}
	}

	var cmd tea.Cmd
	var selected bool
	m.Grid, cmd, selected = m.Grid.Update(msg)
	if !selected {
		return m, cmd
	}

	item, ok := m.Grid.Selected()
	if !ok {
		return m, cmd
	}
	var req *explorer.DetailRequest
	m.State, req = explorer.Select(m.State, item.ID)
	return m, tea.Batch(cmd, m.dispatchDetail(req))
}

func (m Model) changePage(move func(explorer.State) (explorer.State, *explorer.SearchRequest)) (tea.Model, tea.Cmd) {
	if m.State.IsSearching() {
		return m, nil
	}
	var req *explorer.SearchRequest
	m.State, req = move(m.State)
	return m, m.dispatchSearch(req)
}
