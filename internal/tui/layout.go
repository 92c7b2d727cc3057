package tui

// Fixed rows around the results area
const (
	HeaderHeight     = 1
	SearchBarHeight  = 3 // input plus border
	RecallHeight     = 1 // recent-query line while recalling
	FilterBarHeight  = 1
	StatusHeight     = 1
	PaginationHeight = 1
	FooterHeight     = 1

	MinResultsHeight = 5
	HorizontalMargin = 2
)

// chromeHeight returns the rows used by everything except the results grid
func (m Model) chromeHeight() int {
	h := HeaderHeight + SearchBarHeight + FilterBarHeight + StatusHeight + PaginationHeight + FooterHeight
	if m.SearchBar.Recalling() {
		h += RecallHeight
	}
	return h
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentWidth := m.Width - HorizontalMargin*2
	if contentWidth < 20 {
		contentWidth = 20
	}

	resultsHeight := m.Height - m.chromeHeight()
	if resultsHeight < MinResultsHeight {
		resultsHeight = MinResultsHeight
	}

	m.SearchBar.SetWidth(contentWidth)
	m.FilterBar.SetWidth(contentWidth)
	m.Grid.SetSize(contentWidth, resultsHeight)
	m.Pagination.SetWidth(contentWidth)
	m.Detail.SetSize(m.Width, m.Height)
	m.help.Width = contentWidth
}
