package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridNormalisesToOdd(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, g.W)
	assert.Equal(t, 5, g.H)

	g, err = NewGrid(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, g.W)
	assert.Equal(t, 1, g.H)
}

func TestNewGridRejectsDegenerateSizes(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-3, 3}, {0, 0}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestGridOutOfRangeAccessIsNoop(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	_, ok := g.At(-1, 0)
	assert.False(t, ok)
	_, ok = g.At(3, 1)
	assert.False(t, ok)
	assert.False(t, g.Set(0, 3, Region(7)))
	assert.False(t, g.Set(-1, -1, Region(7)))

	assert.True(t, g.Set(1, 1, Region(7)))
	c, ok := g.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, Region(7), c)

	assert.Equal(t, ViewWall, g.CellAt(10, 10).Kind)
}

func TestGridGeometry(t *testing.T) {
	g, err := NewGrid(7, 5)
	require.NoError(t, err)

	rx, ry := g.Rooms()
	assert.Equal(t, 3, rx)
	assert.Equal(t, 2, ry)
	assert.Equal(t, 6, g.RoomCount())
	// 2 vertical walls per row * 2 rows + 3 horizontal walls * 1 row
	assert.Equal(t, 7, g.WallCount())

	assert.True(t, IsRoom(1, 3))
	assert.True(t, IsPost(2, 2))
	assert.True(t, IsWall(2, 1))
	assert.True(t, IsWall(1, 2))
	assert.False(t, IsWall(1, 1))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)
	g.Set(1, 1, Region(3))

	c := g.Clone()
	require.True(t, g.Equal(c))

	c.Set(1, 1, OnPath())
	assert.False(t, g.Equal(c))
	cell, _ := g.At(1, 1)
	assert.Equal(t, Region(3), cell)
}

func TestCellViews(t *testing.T) {
	assert.Equal(t, CellView{Kind: ViewWall}, Uncarved().view())
	assert.Equal(t, CellView{Kind: ViewRoom, Label: 42}, Region(42).view())
	assert.Equal(t, CellView{Kind: ViewRoom, Label: 3, Measured: true}, Distance(3).view())
	assert.Equal(t, CellView{Kind: ViewPath}, OnPath().view())

	assert.True(t, Distance(3).view().Reached())
	assert.False(t, Distance(Unvisited).view().Reached())
	assert.False(t, Distance(EntranceOpen).view().Reached())
	assert.False(t, Region(3).view().Reached())
}
