package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/nextep/internal/domain"
	"github.com/mmcdole/nextep/internal/tui/styles"
)

// NoDataLabel replaces fields OMDb has no value for
const NoDataLabel = "No data"

// DetailState is what the overlay is showing
type DetailState int

const (
	DetailHidden DetailState = iota
	DetailShowLoading
	DetailShowError
	DetailShowContent
)

// DetailModal is the overlay with the full record of one title
type DetailModal struct {
	state        DetailState
	detail       *domain.TitleDetail
	errMsg       string
	spinnerFrame int

	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModal creates a hidden detail overlay
func NewDetailModal() DetailModal {
	return DetailModal{viewport: viewport.New(0, 0)}
}

// ShowLoading opens the overlay in its loading state
func (d *DetailModal) ShowLoading() {
	d.state = DetailShowLoading
	d.detail = nil
	d.errMsg = ""
}

// ShowError opens the overlay with an error message
func (d *DetailModal) ShowError(msg string) {
	d.state = DetailShowError
	d.detail = nil
	d.errMsg = msg
}

// ShowDetail opens the overlay with a loaded record
func (d *DetailModal) ShowDetail(detail *domain.TitleDetail) {
	if d.state == DetailShowContent && d.detail == detail {
		return
	}
	d.state = DetailShowContent
	d.detail = detail
	d.errMsg = ""
	d.refresh()
	d.viewport.GotoTop()
}

// Hide closes the overlay
func (d *DetailModal) Hide() {
	d.state = DetailHidden
	d.detail = nil
	d.errMsg = ""
}

// IsVisible returns true if the overlay is open
func (d DetailModal) IsVisible() bool {
	return d.state != DetailHidden
}

// State returns what the overlay is showing
func (d DetailModal) State() DetailState {
	return d.state
}

// SetSpinnerFrame advances the loading spinner
func (d *DetailModal) SetSpinnerFrame(frame int) {
	d.spinnerFrame = frame
}

// SetSize updates the available screen area
func (d *DetailModal) SetSize(width, height int) {
	d.width = width
	d.height = height
	w, h := d.contentSize()
	d.viewport.Width = w
	d.viewport.Height = h
	d.refresh()
}

// contentSize returns the inner size of the modal
func (d DetailModal) contentSize() (int, int) {
	modalWidth := d.width * 3 / 4
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 100 {
		modalWidth = 100
	}
	frameW, frameH := styles.ModalStyle.GetFrameSize()
	w := modalWidth - frameW
	// Header, blank line and footer hint
	h := d.height - 5 - frameH - 3
	if h < 3 {
		h = 3
	}
	return w, h
}

func (d *DetailModal) refresh() {
	if d.state != DetailShowContent || d.detail == nil {
		return
	}
	d.viewport.SetContent(RenderDetailBody(*d.detail, d.viewport.Width))
}

// Update handles messages. closed is true when the user dismissed the overlay.
func (d DetailModal) Update(msg tea.Msg) (modal DetailModal, cmd tea.Cmd, closed bool) {
	if !d.IsVisible() {
		return d, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DetailModalKeys.Close):
			d.Hide()
			return d, nil, true
		case key.Matches(msg, DetailModalKeys.Up):
			d.viewport.LineUp(1)
			return d, nil, false
		case key.Matches(msg, DetailModalKeys.Down):
			d.viewport.LineDown(1)
			return d, nil, false
		case key.Matches(msg, DetailModalKeys.PageUp):
			d.viewport.HalfViewUp()
			return d, nil, false
		case key.Matches(msg, DetailModalKeys.PageDown):
			d.viewport.HalfViewDown()
			return d, nil, false
		}
		return d, nil, false
	}

	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd, false
}

// View renders the overlay centered in the available area
func (d DetailModal) View() string {
	if !d.IsVisible() {
		return ""
	}

	w, _ := d.contentSize()
	var b strings.Builder

	switch d.state {
	case DetailShowLoading:
		b.WriteString(styles.ModalTitleStyle.Render("Details"))
		b.WriteString("\n")
		b.WriteString(styles.Spinner(d.spinnerFrame) + " " + styles.DimStyle.Render("Loading details..."))
	case DetailShowError:
		b.WriteString(styles.ModalTitleStyle.Render("Details"))
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(styles.WordWrap(d.errMsg, w)))
	case DetailShowContent:
		b.WriteString(RenderDetailHeader(*d.detail, w))
		b.WriteString("\n")
		b.WriteString(d.viewport.View())
		if !d.viewport.AtBottom() {
			b.WriteString("\n" + styles.DimStyle.Render("▼ more"))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpKeyStyle.Render("esc") + " " + styles.HelpDescStyle.Render("close"))

	modal := styles.ModalStyle.
		Width(w + styles.ModalStyle.GetHorizontalPadding()).
		Render(b.String())

	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, modal)
}

// RenderDetailHeader renders the title line, the year · type · runtime summary and the poster line
func RenderDetailHeader(t domain.TitleDetail, width int) string {
	title := styles.TitleStyle.Render(styles.Truncate(domain.OrFallback(t.Title, NoDataLabel), width))

	var meta []string
	for _, v := range []string{t.Year, t.Type, t.Runtime, t.Rated} {
		if domain.Available(v) {
			meta = append(meta, v)
		}
	}
	lines := []string{title}
	if len(meta) > 0 {
		lines = append(lines, styles.SubtitleStyle.Render(strings.Join(meta, " · ")))
	}

	poster := posterMarker(t.SearchResultItem)
	if t.HasPoster() {
		urlWidth := width - lipgloss.Width(PosterLabel) - 1
		if urlWidth > 0 {
			poster += " " + styles.DimStyle.Render(styles.Truncate(t.PosterURL, urlWidth))
		}
	}
	lines = append(lines, poster)

	return strings.Join(lines, "\n")
}

// RenderDetailBody renders the scrollable part of the detail overlay
func RenderDetailBody(t domain.TitleDetail, width int) string {
	const labelWidth = 12
	valueWidth := width - labelWidth
	if valueWidth < 10 {
		valueWidth = 10
	}

	var lines []string
	field := func(label, value string) {
		v := styles.WordWrap(domain.OrFallback(value, NoDataLabel), valueWidth)
		indent := strings.Repeat(" ", labelWidth)
		v = strings.ReplaceAll(v, "\n", "\n"+indent)
		lines = append(lines, styles.LabelStyle.Render(styles.Pad(label, labelWidth))+v)
	}

	field("Genre", t.Genre)
	field("Director", t.Director)
	field("Writer", t.Writer)
	field("Cast", t.Actors)
	field("Released", t.Released)
	field("Language", t.Language)
	field("Country", t.Country)
	if t.Type == string(domain.TypeSeries) {
		field("Seasons", t.TotalSeasons)
	}
	field("Awards", t.Awards)

	rating := domain.OrFallback(t.IMDbRating, NoDataLabel)
	if domain.Available(t.IMDbRating) {
		rating = "★ " + t.IMDbRating + "/10"
		if domain.Available(t.IMDbVotes) {
			rating += fmt.Sprintf(" (%s votes)", t.IMDbVotes)
		}
	}
	field("IMDb", rating)
	field("Metascore", t.Metascore)

	if len(t.Ratings) > 0 {
		lines = append(lines, "")
		lines = append(lines, styles.AccentStyle.Render("Ratings"))
		for _, r := range t.Ratings {
			field("  "+styles.Truncate(r.Source, labelWidth-3), r.Value)
		}
	}

	lines = append(lines, "")
	lines = append(lines, styles.AccentStyle.Render("Plot"))
	lines = append(lines, styles.WordWrap(domain.OrFallback(t.Plot, NoDataLabel), width))

	return strings.Join(lines, "\n")
}
