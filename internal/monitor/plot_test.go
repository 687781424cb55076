package monitor

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/jobdash/internal/series"
)

func TestMain(m *testing.M) {
	// Force a plain color profile so rendered output is stable regardless
	// of the terminal the tests run in.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestPointBounds(t *testing.T) {
	points := []series.Point{
		{X: 1, Y: 1061},
		{X: 2, Y: 874},
		{X: 3, Y: 655},
	}

	b := PointBounds(points)
	assert.Equal(t, 1.0, b.XMin)
	assert.Equal(t, 3.0, b.XMax)
	assert.Equal(t, 655.0, b.YMin)
	assert.Equal(t, 1061.0, b.YMax)
}

func TestPointBoundsFlatRangeWidened(t *testing.T) {
	points := []series.Point{
		{X: 5, Y: 42},
		{X: 5, Y: 42},
	}

	b := PointBounds(points)
	assert.Equal(t, b.XMin+1, b.XMax)
	assert.Equal(t, b.YMin+1, b.YMax)
}

func TestPointBoundsEmpty(t *testing.T) {
	assert.Equal(t, Bounds{}, PointBounds(nil))
}

func TestRenderBraillePlotDimensions(t *testing.T) {
	points := []series.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 10},
		{X: 2, Y: 5},
		{X: 3, Y: 20},
	}

	out := RenderBraillePlot(points, 10, 4, ColorGraph)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 10, len([]rune(line)))
	}
}

func TestRenderBraillePlotUsesBrailleRunes(t *testing.T) {
	points := []series.Point{
		{X: 1, Y: 1061},
		{X: 2, Y: 874},
		{X: 3, Y: 655},
	}

	out := RenderBraillePlot(points, 20, 4, ColorGraph)
	nonEmpty := 0
	for _, r := range out {
		if r == '\n' {
			continue
		}
		require.True(t, r >= brailleBase && r <= brailleBase+255,
			"unexpected rune %q in plot output", r)
		if r != brailleBase {
			nonEmpty++
		}
	}
	assert.Greater(t, nonEmpty, 0)
}

func TestRenderBraillePlotConnectsPoints(t *testing.T) {
	// Two points at opposite corners: the line between them must touch
	// every character column.
	points := []series.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
	}

	out := RenderBraillePlot(points, 8, 2, ColorGraph)
	lines := strings.Split(out, "\n")

	for col := 0; col < 8; col++ {
		touched := false
		for _, line := range lines {
			runes := []rune(line)
			if runes[col] != brailleBase {
				touched = true
			}
		}
		assert.True(t, touched, "column %d has no dots", col)
	}
}

func TestRenderBraillePlotEmpty(t *testing.T) {
	assert.Empty(t, RenderBraillePlot(nil, 10, 4, ColorGraph))
	assert.Empty(t, RenderBraillePlot([]series.Point{{X: 1, Y: 1}}, 0, 4, ColorGraph))
	assert.Empty(t, RenderBraillePlot([]series.Point{{X: 1, Y: 1}}, 10, 0, ColorGraph))
}

func TestRenderBlockSparkline(t *testing.T) {
	out := RenderBlockSparkline([]float64{0, 50, 100}, 10, ColorGraph)
	runes := []rune(out)
	require.Len(t, runes, 3)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[2])
}

func TestRenderBlockSparklineKeepsMostRecent(t *testing.T) {
	data := []float64{100, 100, 100, 0, 0}
	out := RenderBlockSparkline(data, 2, ColorGraph)
	assert.Equal(t, "▁▁", out)
}

func TestRenderBlockSparklineFlatData(t *testing.T) {
	out := RenderBlockSparkline([]float64{5, 5, 5}, 10, ColorGraph)
	assert.Equal(t, "▅▅▅", out)
}

func TestRenderBlockSparklineEmpty(t *testing.T) {
	assert.Empty(t, RenderBlockSparkline(nil, 10, ColorGraph))
	assert.Empty(t, RenderBlockSparkline([]float64{1}, 0, ColorGraph))
}
