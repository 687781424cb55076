// Package series turns the raw text fetched from a remote job into named
// numeric series for plotting. Each target kind has its own parser; parsing
// is strict and positional, so a malformed token aborts the whole refresh
// cycle rather than producing a partially-wrong plot.
package series

// Point is a single (x, y) sample in a series.
type Point struct {
	X float64
	Y float64
}

// Series is a named ordered sequence of points.
type Series struct {
	Name   string
	Points []Point
}

// Last returns the most recent point in the series and whether one exists.
func (s Series) Last() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Ys returns the y values of the series in order. Useful for handing a
// series to renderers that only care about the sample values.
func (s Series) Ys() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Y
	}
	return ys
}
