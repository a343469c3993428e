package maze

import (
	"math/rand/v2"
	"time"

	"github.com/zyedidia/generic/mapset"
)

const (
	// labelBackground is reserved alongside zero; region labels are 24-bit
	// so a renderer can read them as RGB directly.
	labelBackground uint32 = 0xFFFFFF
	// maxLabels is the number of usable region labels.
	maxLabels = 1<<24 - 2
)

// LabelAllocator hands out random bytes, bounded indices and unique region
// labels from one PCG stream.
type LabelAllocator struct {
	r    *rand.Rand
	used mapset.Set[uint32]
}

// NewLabelAllocator creates an allocator. A zero seed is replaced by the
// wall clock so that every run produces a different maze.
func NewLabelAllocator(seed int64) *LabelAllocator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LabelAllocator{
		r:    rand.New(rand.NewPCG(uint64(seed), 0)),
		used: mapset.Of[uint32](0, labelBackground),
	}
}

// Byte returns a uniformly distributed byte.
func (l *LabelAllocator) Byte() uint8 {
	return uint8(l.r.Uint32())
}

// Index returns a uniform index in [0, bound). It returns 0 for bound <= 0.
func (l *LabelAllocator) Index(bound int) int {
	if bound <= 0 {
		return 0
	}
	return l.r.IntN(bound)
}

// Next returns a region label that has not been issued before. Labels are
// drawn as three random bytes and redrawn on collision.
func (l *LabelAllocator) Next() uint32 {
	for {
		id := uint32(l.Byte())<<16 | uint32(l.Byte())<<8 | uint32(l.Byte())
		if l.used.Has(id) {
			continue
		}
		l.used.Put(id)
		return id
	}
}

// Issued returns how many region labels have been handed out.
func (l *LabelAllocator) Issued() int {
	return l.used.Size() - 2
}
