package maze

import "fmt"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// neighbors lists the 4-neighbour offsets in visiting order: left, right, up, down.
var neighbors = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid stores the cell states of a maze in row-major order. Both dimensions
// are always odd.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates an all-uncarved grid. Even dimensions are rounded up to
// the next odd value.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	w, h = oddUp(w), oddUp(h)
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}, nil
}

func oddUp(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). ok is false outside the grid.
func (g *Grid) At(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.W+x], true
}

// Set stores c at (x, y). Out-of-range writes are ignored and report false.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.W+x] = c
	return true
}

// Rooms returns the number of room columns and rows.
func (g *Grid) Rooms() (int, int) { return g.W / 2, g.H / 2 }

// RoomCount returns the total number of rooms.
func (g *Grid) RoomCount() int {
	rx, ry := g.Rooms()
	return rx * ry
}

// WallCount returns the number of interior wall cells that separate two rooms.
func (g *Grid) WallCount() int {
	rx, ry := g.Rooms()
	if rx == 0 || ry == 0 {
		return 0
	}
	return (rx-1)*ry + rx*(ry-1)
}

// IsRoom reports whether (x, y) is a room coordinate.
func IsRoom(x, y int) bool { return x%2 == 1 && y%2 == 1 }

// IsPost reports whether (x, y) is a post coordinate.
func IsPost(x, y int) bool { return x%2 == 0 && y%2 == 0 }

// IsWall reports whether (x, y) is a wall coordinate.
func IsWall(x, y int) bool { return (x+y)%2 == 1 }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{W: g.W, H: g.H, cells: cells}
}

// Equal reports whether both grids hold identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
