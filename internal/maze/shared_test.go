package maze

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedStepAndReadConcurrently(t *testing.T) {
	e := newEngine(t, 41, 31, 0.05, 12)
	s := NewShared(e)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for !s.Done() {
			s.Step()
		}
	}()

	reads := 0
	for done := false; !done; {
		s.Read(func(r Reader) {
			w, h := r.Dimensions()
			open := 0
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if r.CellAt(x, y).Kind != ViewWall {
						open++
					}
				}
			}
			// Rooms are open from the start and nothing is ever closed.
			require.GreaterOrEqual(t, open, r.Stats().Rooms)
			done = r.Done()
		})
		reads++
	}
	wg.Wait()

	assert.Positive(t, reads)
	s.Read(func(r Reader) {
		assert.Equal(t, PhaseDone, r.Phase())
		assert.NotEmpty(t, r.Path())
		p, ok := r.Parameters().Lookup("phase")
		require.True(t, ok)
		assert.Equal(t, "done", p.Value)
	})
}

func TestSharedReset(t *testing.T) {
	s := NewShared(newEngine(t, 9, 9, 0, 3))
	for !s.Done() {
		s.Step()
	}
	s.Reset(3)
	assert.False(t, s.Done())
	s.Read(func(r Reader) {
		assert.Equal(t, PhaseConstructing, r.Phase())
	})
}

func TestSharedAdvance(t *testing.T) {
	s := NewShared(newEngine(t, 3, 3, 0, 1))
	assert.Equal(t, 2, s.Advance(2))
	assert.Equal(t, 3, s.Advance(100))
	assert.True(t, s.Done())
	assert.Zero(t, s.Advance(1))
}
