package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/explorer"
	"github.com/mmcdole/nextep/internal/service"
	"github.com/mmcdole/nextep/internal/tui/components"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// Focus identifies the control receiving key input
type Focus int

const (
	FocusSearch Focus = iota
	FocusType
	FocusYear
	FocusResults
)

// focusOrder is the tab order
var focusOrder = []Focus{FocusSearch, FocusType, FocusYear, FocusResults}

// TickInterval drives the spinner
const TickInterval = 100 * time.Millisecond

// Options tunes the model
type Options struct {
	GridColumns int
	Plot        domain.PlotVerbosity
	Logger      *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Page state, only changed through explorer transitions
	State explorer.State

	// Services
	Catalog *service.CatalogService
	logger  *slog.Logger

	// UI Components
	SearchBar  components.SearchBar
	FilterBar  components.FilterBar
	Grid       components.ResultGrid
	Pagination components.Pagination
	Detail     components.DetailModal
	help       help.Model

	// UI state
	Focus        Focus
	ShowHelp     bool
	Ready        bool
	SpinnerFrame int

	// Dimensions
	Width  int
	Height int
}

// NewModel creates a new application model
func NewModel(catalog *service.CatalogService, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.GridColumns < 1 {
		opts.GridColumns = 2
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	m := Model{
		State:     explorer.New(opts.Plot),
		Catalog:   catalog,
		logger:    opts.Logger,
		SearchBar: components.NewSearchBar(),
		FilterBar: components.NewFilterBar(),
		Grid:      components.NewResultGrid(opts.GridColumns),
		Detail:    components.NewDetailModal(),
		help:      h,
	}
	m.setFocus(FocusSearch)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		TickCmd(TickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.syncComponents()
		return m, TickCmd(TickInterval)

	case SearchCompletedMsg:
		return m.handleSearchCompleted(msg), nil

	case DetailCompletedMsg:
		return m.handleDetailCompleted(msg), nil
	}

	// Cursor blink and other component messages go to the focused input
	var cmd tea.Cmd
	switch m.Focus {
	case FocusSearch:
		m.SearchBar, cmd, _ = m.SearchBar.Update(msg)
	case FocusType, FocusYear:
		m.FilterBar, cmd, _ = m.FilterBar.Update(msg)
	case FocusResults:
		m.Grid, cmd, _ = m.Grid.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSearchCompleted(msg SearchCompletedMsg) Model {
	if !m.State.IsCurrentSearch(msg.Req) {
		m.logger.Debug("discarding stale search response", "seq", msg.Req.Seq, "query", msg.Req.Query.Text)
		return m
	}

	if msg.Err != nil {
		m.State = explorer.SearchFailed(m.State, msg.Req, msg.Err)
	} else {
		m.State = explorer.SearchSucceeded(m.State, msg.Req, msg.Page)
	}
	m.Grid.SetItems(m.State.Results.Items)
	if m.Focus == FocusResults && !m.resultsFocusable() {
		m.setFocus(FocusSearch)
	}
	m.syncComponents()
	return m
}

func (m Model) handleDetailCompleted(msg DetailCompletedMsg) Model {
	if !m.State.IsCurrentDetail(msg.Req) || !m.State.DetailOpen() {
		m.logger.Debug("discarding stale detail response", "seq", msg.Req.Seq, "id", msg.Req.ID)
		return m
	}

	if msg.Err != nil {
		m.State = explorer.DetailFailed(m.State, msg.Req, msg.Err)
	} else {
		m.State = explorer.DetailSucceeded(m.State, msg.Req, msg.Detail)
	}
	m.syncComponents()
	return m
}

// dispatchSearch turns a search descriptor into a command
func (m *Model) dispatchSearch(req *explorer.SearchRequest) tea.Cmd {
	m.syncComponents()
	if req == nil {
		return nil
	}
	m.logger.Debug("dispatching search",
		"seq", req.Seq,
		"query", req.Query.Text,
		"page", req.Query.Page,
		"type", string(req.Query.Type),
		"year", req.Query.Year,
	)
	return SearchCmd(m.Catalog, *req)
}

// dispatchDetail turns a detail descriptor into a command
func (m *Model) dispatchDetail(req *explorer.DetailRequest) tea.Cmd {
	m.syncComponents()
	if req == nil {
		return nil
	}
	m.logger.Debug("dispatching detail", "seq", req.Seq, "id", req.ID)
	return DetailCmd(m.Catalog, *req)
}

// syncComponents projects the explorer state onto the widgets
func (m *Model) syncComponents() {
	s := m.State

	m.SearchBar.SetHistory(s.History)
	m.SearchBar.SetSearching(s.IsSearching(), m.SpinnerFrame)

	m.FilterBar.SetFilters(s.Filters.Type, s.Filters.Year)
	m.FilterBar.SetDirty(s.Query != "" && s.Filters != s.Applied)

	m.Pagination.Label = s.PaginationLabel()
	m.Pagination.HasPrev = s.HasPrevPage()
	m.Pagination.HasNext = s.HasNextPage()
	m.Pagination.Busy = s.IsSearching()

	m.Detail.SetSpinnerFrame(m.SpinnerFrame)
	switch s.DetailStat {
	case explorer.DetailClosed:
		m.Detail.Hide()
	case explorer.DetailLoading:
		if m.Detail.State() != components.DetailShowLoading {
			m.Detail.ShowLoading()
		}
	case explorer.DetailError:
		m.Detail.ShowError(s.DetailMsg)
	case explorer.DetailLoaded:
		if s.Detail != nil {
			m.Detail.ShowDetail(s.Detail)
		} else {
			m.Detail.ShowError(components.NoDataLabel)
		}
	}
}

// setFocus moves keyboard focus to f
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.Focus = f
	m.SearchBar.Blur()
	m.FilterBar.Blur()
	m.Grid.SetFocused(false)

	switch f {
	case FocusSearch:
		return m.SearchBar.Focus()
	case FocusType:
		return m.FilterBar.Focus(components.FilterFieldType)
	case FocusYear:
		return m.FilterBar.Focus(components.FilterFieldYear)
	case FocusResults:
		m.Grid.SetFocused(true)
	}
	return nil
}

// cycleFocus moves focus step places along the tab order.
// The results grid is skipped while it is not shown.
func (m *Model) cycleFocus(step int) tea.Cmd {
	idx := 0
	for i, f := range focusOrder {
		if f == m.Focus {
			idx = i
		}
	}
	for range focusOrder {
		idx = (idx + step + len(focusOrder)) % len(focusOrder)
		if focusOrder[idx] == FocusResults && !m.resultsFocusable() {
			continue
		}
		break
	}
	return m.setFocus(focusOrder[idx])
}

// resultsFocusable returns true when there are cards to navigate
func (m Model) resultsFocusable() bool {
	return m.State.HasSearched && len(m.State.Results.Items) > 0
}
