package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crossGrid returns a 5x5 grid with the centre (2,2) and its four
// neighbours open, labelled left, right, up, down.
func crossGrid(t *testing.T, left, right, up, down Cell) *Grid {
	t.Helper()
	g, err := NewGrid(5, 5)
	require.NoError(t, err)
	g.Set(2, 2, OnPath())
	g.Set(1, 2, left)
	g.Set(3, 2, right)
	g.Set(2, 1, up)
	g.Set(2, 3, down)
	return g
}

func TestTracerTieGoesToLastDirection(t *testing.T) {
	cases := []struct {
		name                  string
		left, right, up, down Cell
		want                  Point
	}{
		{"all tied", Distance(4), Distance(4), Distance(4), Distance(4), Point{2, 3}},
		{"left and right tied", Distance(2), Distance(2), Distance(5), Distance(5), Point{3, 2}},
		{"unique minimum up", Distance(3), Distance(3), Distance(1), Distance(2), Point{2, 1}},
		{"path cells skipped", Distance(6), OnPath(), Uncarved(), OnPath(), Point{1, 2}},
		{"unvisited is a last resort", Distance(Unvisited), Uncarved(), Distance(7), Uncarved(), Point{2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := crossGrid(t, tc.left, tc.right, tc.up, tc.down)
			tr := newTracer(g, Point{2, 2}, Point{0, 0})
			tr.hop()
			require.False(t, tr.stuck)
			assert.Equal(t, tc.want, tr.cur)
			c, _ := g.At(tc.want.X, tc.want.Y)
			assert.Equal(t, OnPath(), c)
			assert.Equal(t, []Point{{2, 2}, tc.want}, tr.path)
		})
	}
}

func TestTracerStuckWithoutLabelledNeighbour(t *testing.T) {
	g := crossGrid(t, Uncarved(), OnPath(), Uncarved(), Region(3))
	tr := newTracer(g, Point{2, 2}, Point{0, 0})
	tr.hop()
	assert.True(t, tr.stuck)
	assert.True(t, tr.complete())
	assert.False(t, tr.arrived())
	assert.Equal(t, Point{2, 2}, tr.cur)
}

func TestTracerArrivesAtGoal(t *testing.T) {
	g, err := NewGrid(7, 3)
	require.NoError(t, err)
	for x := 1; x < 7; x++ {
		g.Set(x, 1, Distance(uint32(6-x)))
	}
	g.Set(0, 1, OnPath())
	tr := newTracer(g, Point{0, 1}, Point{6, 1})
	for i := 0; !tr.complete(); i++ {
		require.Less(t, i, 10)
		tr.hop()
	}
	assert.True(t, tr.arrived())
	assert.Len(t, tr.path, 7)
}
