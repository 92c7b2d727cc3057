package tui

import (
	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/explorer"
)

// Message types for the TUI

// SearchCompletedMsg carries the outcome of a dispatched search
type SearchCompletedMsg struct {
	Req  explorer.SearchRequest
	Page *domain.SearchResultPage
	Err  error
}

// DetailCompletedMsg carries the outcome of a dispatched detail lookup
type DetailCompletedMsg struct {
	Req    explorer.DetailRequest
	Detail *domain.TitleDetail
	Err    error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}
