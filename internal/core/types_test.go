package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countdown struct{ left int }

func (c *countdown) Step()      { c.left-- }
func (c *countdown) Done() bool { return c.left <= 0 }

func TestAdvanceStopsWhenDone(t *testing.T) {
	c := &countdown{left: 5}
	assert.Equal(t, 3, Advance(c, 3))
	assert.Equal(t, 2, Advance(c, 10))
	assert.Equal(t, 0, Advance(c, 10))
	assert.True(t, c.Done())
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "w", Value: "3"}}},
		{Name: "b", Params: []Parameter{{Key: "phase", Value: "done"}}},
	}}
	p, ok := s.Lookup("phase")
	assert.True(t, ok)
	assert.Equal(t, "done", p.Value)
	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}
