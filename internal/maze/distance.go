package maze

// labeler floods distances outward from the goal, one frontier per step.
type labeler struct {
	g        *Grid
	entrance Point
	frontier []Point
	drains   int
}

func newLabeler(g *Grid, entrance Point, sources ...Point) *labeler {
	frontier := make([]Point, len(sources))
	copy(frontier, sources)
	return &labeler{g: g, entrance: entrance, frontier: frontier}
}

// drain expands every cell of the current frontier. A neighbour is only ever
// lowered to d+1, never raised.
func (l *labeler) drain() {
	next := make([]Point, 0, 2*len(l.frontier))
	for _, p := range l.frontier {
		c, ok := l.g.At(p.X, p.Y)
		if !ok || c.Kind != KindDistance {
			continue
		}
		d := c.Value + 1
		for _, o := range neighbors {
			n := Point{p.X + o.X, p.Y + o.Y}
			nc, ok := l.g.At(n.X, n.Y)
			if !ok || nc.Kind != KindDistance || nc.Value <= d {
				continue
			}
			l.g.Set(n.X, n.Y, Distance(d))
			next = append(next, n)
		}
	}
	l.frontier = next
	l.drains++
}

// reached reports whether the flood has overwritten the entrance sentinel.
func (l *labeler) reached() bool {
	c, ok := l.g.At(l.entrance.X, l.entrance.Y)
	if !ok {
		return false
	}
	return c.Kind != KindDistance || c.Value != EntranceOpen
}

func (l *labeler) complete() bool {
	return l.reached() || len(l.frontier) == 0
}
