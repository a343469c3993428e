package maze

// tracer walks from the entrance towards the goal, one cell per hop.
type tracer struct {
	g     *Grid
	cur   Point
	goal  Point
	limit int
	path  []Point
	stuck bool
}

func newTracer(g *Grid, from, goal Point) *tracer {
	return &tracer{g: g, cur: from, goal: goal, limit: g.W * g.H, path: []Point{from}}
}

// hop moves to a labelled neighbour. Neighbours are tested left, right, up,
// down; each one whose distance is <= the best seen so far replaces the
// choice, so on ties the last one tested wins.
func (t *tracer) hop() {
	best := Unvisited
	var next Point
	found := false
	for _, o := range neighbors {
		n := Point{t.cur.X + o.X, t.cur.Y + o.Y}
		c, ok := t.g.At(n.X, n.Y)
		if !ok || c.Kind != KindDistance || c.Value > best {
			continue
		}
		next, best, found = n, c.Value, true
	}
	if !found {
		t.stuck = true
		return
	}
	t.g.Set(next.X, next.Y, OnPath())
	t.cur = next
	t.path = append(t.path, next)
}

func (t *tracer) arrived() bool { return t.cur == t.goal }

func (t *tracer) complete() bool {
	return t.arrived() || t.stuck || len(t.path) > t.limit
}
