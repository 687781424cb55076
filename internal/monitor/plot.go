package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/jobdash/internal/series"
)

// Braille character rendering for high-resolution terminal plots.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '⠀'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Bounds is the data range covered by a rendered plot, for axis labels.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// PointBounds computes the x and y extents of a point set. A flat range is
// widened by one unit so every value still lands inside the plot.
func PointBounds(points []series.Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{
		XMin: points[0].X, XMax: points[0].X,
		YMin: points[0].Y, YMax: points[0].Y,
	}
	for _, p := range points {
		if p.X < b.XMin {
			b.XMin = p.X
		}
		if p.X > b.XMax {
			b.XMax = p.X
		}
		if p.Y < b.YMin {
			b.YMin = p.Y
		}
		if p.Y > b.YMax {
			b.YMax = p.Y
		}
	}
	if b.XMax == b.XMin {
		b.XMax = b.XMin + 1
	}
	if b.YMax == b.YMin {
		b.YMax = b.YMin + 1
	}
	return b
}

// RenderBraillePlot renders an (x, y) line plot using braille characters.
// Each character cell holds a 2x4 dot grid, so a width x height character
// area gives 2*width horizontal by 4*height vertical resolution. Points are
// placed by value, not by sample index, and adjacent points are joined with
// interpolated dots so sparse data still reads as a line.
func RenderBraillePlot(points []series.Point, width, height int, color lipgloss.Color) string {
	if len(points) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	b := PointBounds(points)
	cols := width * 2
	rows := height * 4

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	set := func(dotCol, dotRow int) {
		if dotCol < 0 || dotCol >= cols || dotRow < 0 || dotRow >= rows {
			return
		}
		charCol := dotCol / 2
		charRow := dotRow / 4
		bitOffset := brailleDots[dotRow%4][dotCol%2]
		grid[charRow][charCol] |= rune(1 << bitOffset)
	}

	toDot := func(p series.Point) (int, int) {
		nx := (p.X - b.XMin) / (b.XMax - b.XMin)
		ny := (p.Y - b.YMin) / (b.YMax - b.YMin)
		dotCol := int(nx * float64(cols-1))
		dotRow := (rows - 1) - int(ny*float64(rows-1))
		return dotCol, dotRow
	}

	prevCol, prevRow := toDot(points[0])
	set(prevCol, prevRow)
	for _, p := range points[1:] {
		col, row := toDot(p)
		plotLine(prevCol, prevRow, col, row, set)
		prevCol, prevRow = col, row
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// plotLine walks the dot grid from (x0, y0) to (x1, y1) using Bresenham's
// algorithm, calling set for each dot.
func plotLine(x0, y0, x1, y1 int, set func(int, int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RenderBlockSparkline renders a single-row sparkline of the most recent
// values using block characters. More compact than braille, good for
// inline display in cards.
func RenderBlockSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	levels := len(sparklineBlocks)
	valueRange := maxVal - minVal
	for _, v := range data {
		level := levels / 2
		if valueRange > 0 {
			level = int((v - minVal) / valueRange * float64(levels-1))
			if level < 0 {
				level = 0
			} else if level >= levels {
				level = levels - 1
			}
		}
		sb.WriteRune(sparklineBlocks[level])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
