package monitor

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/jobdash/internal/refresh"
	"github.com/rileyhilliard/jobdash/internal/series"
)

// staleAfter is how old the remote file's mtime may be before the card
// flags the job as stalled.
const staleAfter = time.Hour

// cardSeriesMax caps how many series a card shows inline. The detail view
// shows all of them.
const cardSeriesMax = 2

// renderCard renders a single job card.
func (m Model) renderCard(t *refresh.Target, width int, selected bool) string {
	innerWidth := width - 4 // border and padding

	var lines []string
	lines = append(lines, m.renderCardTitle(t, innerWidth))
	lines = append(lines, MutedStyle.Render(truncate(t.Host+":"+t.Path, innerWidth)))
	lines = append(lines, m.renderCardTimes(t))

	shown := t.Series
	if len(shown) > cardSeriesMax {
		shown = shown[:cardSeriesMax]
	}
	for _, s := range shown {
		lines = append(lines, renderSeriesLine(s, innerWidth))
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderCardTitle renders the status glyph, job name, and parser kind.
func (m Model) renderCardTitle(t *refresh.Target, width int) string {
	glyph := statusGlyph(t)
	name := JobNameStyle.Render(truncate(t.Name, width-10))
	kind := KindStyle.Render(t.Kind.String())
	return glyph + " " + name + " " + kind
}

// renderCardTimes renders the remote mtime age and local refresh age.
func (m Model) renderCardTimes(t *refresh.Target) string {
	updated := "never"
	if !t.LastModified.IsZero() {
		updated = formatAge(time.Since(t.LastModified))
	}
	refreshed := "pending"
	if !t.LastRefreshed.IsZero() {
		refreshed = formatAge(time.Since(t.LastRefreshed))
	}
	return LabelStyle.Render("updated ") + ValueStyle.Render(updated) +
		MutedStyle.Render("  checked ") + ValueStyle.Render(refreshed)
}

// renderSeriesLine renders one series as "name sparkline last".
func renderSeriesLine(s series.Series, width int) string {
	point, ok := s.Last()
	if !ok {
		return MutedStyle.Render(s.Name)
	}
	last := ValueStyle.Render(formatValue(point.Y))

	sparkWidth := width - lipgloss.Width(s.Name) - lipgloss.Width(last) - 2
	if sparkWidth < 3 {
		sparkWidth = 3
	}
	spark := RenderBlockSparkline(s.Ys(), sparkWidth, ColorGraph)

	return LabelStyle.Render(s.Name) + " " + spark + " " + last
}

// statusGlyph picks the indicator for a job's current state.
func statusGlyph(t *refresh.Target) string {
	switch {
	case len(t.Series) == 0:
		return StatusWaitingStyle.Render(StatusWaiting)
	case time.Since(t.LastModified) > staleAfter:
		return StatusStaleStyle.Render(StatusStale)
	default:
		return StatusLiveStyle.Render(StatusLive)
	}
}

// truncate shortens a string to fit the given display width.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
