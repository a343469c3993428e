package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/queue"
)

// hops computes the number of open-cell hops from start to every reachable
// open cell of v.
func hops(v View, start Point) map[Point]int {
	w, h := v.Dimensions()
	dist := map[Point]int{start: 0}
	q := queue.New[Point]()
	q.Enqueue(start)
	for !q.Empty() {
		p := q.Dequeue()
		for _, o := range neighbors {
			n := Point{p.X + o.X, p.Y + o.Y}
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			if _, ok := dist[n]; ok || v.CellAt(n.X, n.Y).Kind == ViewWall {
				continue
			}
			dist[n] = dist[p] + 1
			q.Enqueue(n)
		}
	}
	return dist
}

func newEngine(t *testing.T, w, h int, loops float64, seed int64) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Loops = loops
	cfg.Seed = seed
	e, err := NewWithConfig(cfg)
	require.NoError(t, err)
	return e
}

// runUntil steps e until it leaves phase p, failing after limit steps.
func runUntil(t *testing.T, e *Engine, p Phase, limit int) {
	t.Helper()
	for i := 0; e.Phase() <= p; i++ {
		require.Less(t, i, limit, "phase %s did not complete", p)
		e.Step()
	}
}

func runToDone(t *testing.T, e *Engine) {
	t.Helper()
	w, h := e.Dimensions()
	runUntil(t, e, PhaseTracing, 4*w*h+16)
	require.True(t, e.Done())
}

func countKind(g *Grid, k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}
