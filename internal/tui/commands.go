package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/nextep/internal/explorer"
	"github.com/mmcdole/nextep/internal/service"
)

// Command factories for async operations.
// Requests carry no deadline of their own; the HTTP client timeout applies.

// SearchCmd performs the search described by req
func SearchCmd(svc *service.CatalogService, req explorer.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := svc.Search(context.Background(), req.Query)
		return SearchCompletedMsg{Req: req, Page: page, Err: err}
	}
}

// DetailCmd performs the detail lookup described by req
func DetailCmd(svc *service.CatalogService, req explorer.DetailRequest) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.GetDetail(context.Background(), req.ID, req.Plot)
		return DetailCompletedMsg{Req: req, Detail: detail, Err: err}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}
