package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/jobdash/internal/series"
)

// renderDetail renders the expanded view for the selected job.
func (m Model) renderDetail() string {
	t := m.SelectedTarget()
	if t == nil {
		return m.renderDashboard()
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("jobdash · " + t.Name)
	kind := KindStyle.Render(" (" + t.Kind.String() + ")")
	b.WriteString(HeaderStyle.Render(title + kind))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(t.Host + ":" + t.Path))
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.detailContent())
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("esc back | ↑↓ scroll | r refresh | q quit"))

	return b.String()
}

// updateDetailViewportContent refreshes the scrollable detail body.
func (m *Model) updateDetailViewportContent() {
	if m.viewportReady {
		m.detailViewport.SetContent(m.detailContent())
	}
}

// detailContent builds the full plot-and-stats body for the selected job.
func (m Model) detailContent() string {
	t := m.SelectedTarget()
	if t == nil {
		return ""
	}

	if len(t.Series) == 0 {
		return LabelStyle.Render("Waiting for first fetch...")
	}

	plotWidth := m.width - 12
	if plotWidth < 20 {
		plotWidth = 20
	}
	plotHeight := 8

	var sections []string
	for _, s := range t.Series {
		sections = append(sections, renderSeriesDetail(s, plotWidth, plotHeight))
	}

	if !t.LastModified.IsZero() {
		sections = append(sections,
			MutedStyle.Render("remote file updated "+formatAge(time.Since(t.LastModified))))
	}

	return strings.Join(sections, "\n\n")
}

// renderSeriesDetail renders one series: a title, an axis-labelled braille
// plot, and a stats line.
func renderSeriesDetail(s series.Series, width, height int) string {
	var b strings.Builder

	b.WriteString(JobNameStyle.Render(s.Name))
	b.WriteString("\n")

	if len(s.Points) == 0 {
		b.WriteString(MutedStyle.Render("no data points"))
		return b.String()
	}

	bounds := PointBounds(s.Points)
	b.WriteString(plotWithAxis(s.Points, bounds, width, height))
	b.WriteString("\n")

	last, _ := s.Last()
	stats := fmt.Sprintf("%d points | x %s..%s | last %s",
		len(s.Points),
		formatValue(bounds.XMin), formatValue(bounds.XMax),
		formatValue(last.Y))
	b.WriteString(MutedStyle.Render(stats))

	return b.String()
}

// plotWithAxis renders a braille plot with a y-axis gutter showing the
// value range: max on the top row, min on the bottom row.
func plotWithAxis(points []series.Point, bounds Bounds, width, height int) string {
	maxLabel := formatValue(bounds.YMax)
	minLabel := formatValue(bounds.YMin)
	gutter := len(maxLabel)
	if len(minLabel) > gutter {
		gutter = len(minLabel)
	}

	plot := RenderBraillePlot(points, width, height, ColorGraph)
	rows := strings.Split(plot, "\n")

	var b strings.Builder
	for i, row := range rows {
		label := strings.Repeat(" ", gutter)
		switch i {
		case 0:
			label = fmt.Sprintf("%*s", gutter, maxLabel)
		case len(rows) - 1:
			label = fmt.Sprintf("%*s", gutter, minLabel)
		}
		b.WriteString(MutedStyle.Render(label + " ┤"))
		b.WriteString(row)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
