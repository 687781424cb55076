package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLast(t *testing.T) {
	s := Series{Name: "norm", Points: []Point{{X: 0, Y: 104.2}, {X: 1, Y: 88.67}}}

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 88.67}, last)
}

func TestLastEmpty(t *testing.T) {
	last, ok := Series{Name: "rmsd"}.Last()
	assert.False(t, ok)
	assert.Equal(t, Point{}, last)
}

func TestYs(t *testing.T) {
	s := Series{Points: []Point{{X: 0, Y: 3}, {X: 1, Y: 1}, {X: 2, Y: 2}}}
	assert.Equal(t, []float64{3, 1, 2}, s.Ys())
}

func TestYsEmpty(t *testing.T) {
	assert.Empty(t, Series{}.Ys())
}
