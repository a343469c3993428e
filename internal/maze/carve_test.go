package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiveByFiveConstruction(t *testing.T) {
	e := newEngine(t, 5, 5, 0, 21)
	rooms := []Point{{1, 1}, {1, 3}, {3, 1}, {3, 3}}

	ids := map[uint32]bool{}
	for _, p := range rooms {
		c, _ := e.grid.At(p.X, p.Y)
		require.Equal(t, KindRegion, c.Kind)
		ids[c.Value] = true
	}
	require.Len(t, ids, 4, "rooms must start as distinct singleton regions")

	for merge := 1; merge <= 3; merge++ {
		require.Equal(t, PhaseConstructing, e.Phase(), "merge %d", merge)
		e.Step()
		assert.Equal(t, merge, e.carver.carved)
		assert.Equal(t, 4-merge, e.carver.regions)
	}
	assert.Equal(t, PhaseLoopBreaking, e.Phase(), "construction completes on the last merge")

	first, _ := e.grid.At(1, 1)
	for _, p := range rooms {
		c, _ := e.grid.At(p.X, p.Y)
		assert.Equal(t, first, c)
	}
	assert.Equal(t, 3, Verify(e.grid).CarvedWalls)
	assert.True(t, Verify(e.grid).Perfect())
}

func TestConstructionBuildsSpanningTree(t *testing.T) {
	sizes := [][2]int{{3, 21}, {21, 3}, {9, 9}, {31, 17}, {64, 36}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 4; seed++ {
			e := newEngine(t, size[0], size[1], 0.5, seed)
			runUntil(t, e, PhaseConstructing, e.grid.RoomCount()+1)

			r := Verify(e.grid)
			require.True(t, r.Connected(), "size %v seed %d: %d components", size, seed, r.Components)
			require.Equal(t, r.Rooms-1, r.CarvedWalls, "size %v seed %d", size, seed)
			require.Equal(t, r.Rooms-1, e.Stats().Carved)

			// Posts are never touched.
			for y := 0; y < e.grid.H; y += 2 {
				for x := 0; x < e.grid.W; x += 2 {
					c, _ := e.grid.At(x, y)
					require.Equal(t, KindUncarved, c.Kind, "post (%d,%d)", x, y)
				}
			}
		}
	}
}

func TestConstructionMergesOneRegionPerStep(t *testing.T) {
	e := newEngine(t, 15, 11, 0, 5)
	rooms := e.grid.RoomCount()
	for i := 1; i < rooms; i++ {
		e.Step()
		r := Verify(e.grid)
		require.Equal(t, rooms-i, r.Components)
		require.Equal(t, i, r.CarvedWalls)
	}
	assert.Equal(t, PhaseLoopBreaking, e.Phase())
}

func TestSingleRoomIsTriviallyConstructed(t *testing.T) {
	e := newEngine(t, 3, 3, 1, 1)
	assert.Equal(t, PhaseLoopBreaking, e.Phase())
	assert.Zero(t, e.Stats().Walls)
}

func TestRelabelStopsAtWallsAndSurvivor(t *testing.T) {
	g, err := NewGrid(7, 3)
	require.NoError(t, err)
	// Rooms (1,1) and (3,1) form region 5, joined by the wall at (2,1).
	// Room (5,1) is region 9 behind an uncarved wall.
	g.Set(1, 1, Region(5))
	g.Set(2, 1, Region(5))
	g.Set(3, 1, Region(5))
	g.Set(5, 1, Region(9))

	n := relabel(g, Point{1, 1}, 5, Region(9))
	assert.Equal(t, 3, n)
	for x := 1; x <= 3; x++ {
		c, _ := g.At(x, 1)
		assert.Equal(t, Region(9), c)
	}
	c, _ := g.At(4, 1)
	assert.Equal(t, KindUncarved, c.Kind)

	assert.Zero(t, relabel(g, Point{1, 1}, 9, Region(9)))
	assert.Zero(t, relabel(g, Point{0, 0}, 9, Region(1)))
}

func TestSampleWallHitsInteriorWalls(t *testing.T) {
	g, err := NewGrid(9, 7)
	require.NoError(t, err)
	l := NewLabelAllocator(3)
	seen := map[Point]bool{}
	for i := 0; i < 4000; i++ {
		x, y, vertical := sampleWall(g, l)
		require.True(t, IsWall(x, y), "(%d,%d)", x, y)
		require.True(t, x > 0 && x < g.W-1 && y > 0 && y < g.H-1, "(%d,%d) on the border", x, y)
		require.Equal(t, vertical, x%2 == 0)
		seen[Point{x, y}] = true
	}
	assert.Len(t, seen, g.WallCount())
}

func TestSampleWallSingleAxis(t *testing.T) {
	g, err := NewGrid(3, 9)
	require.NoError(t, err)
	l := NewLabelAllocator(4)
	for i := 0; i < 200; i++ {
		x, y, vertical := sampleWall(g, l)
		require.False(t, vertical)
		require.Equal(t, 1, x)
		require.Zero(t, y%2)
	}
}
