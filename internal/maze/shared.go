package maze

import (
	"sync"

	"mad-maze/internal/core"
)

// Reader is the read-only surface of an Engine handed out by Shared.Read.
type Reader interface {
	View
	Phase() Phase
	Done() bool
	Stats() Stats
	Path() []Point
	Parameters() core.ParameterSnapshot
}

// Shared guards an Engine with one mutex so that a stepping goroutine and a
// drawing goroutine never observe a half-applied step.
type Shared struct {
	mu sync.Mutex
	e  *Engine
}

// NewShared wraps e. The caller must not use e directly afterwards.
func NewShared(e *Engine) *Shared { return &Shared{e: e} }

// Step advances the engine by one unit of work.
func (s *Shared) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Step()
}

// Advance runs up to n steps under a single lock and returns how many ran.
func (s *Shared) Advance(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Advance(s.e, n)
}

// Done reports whether the engine has finished.
func (s *Shared) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Done()
}

// Reset starts a new maze.
func (s *Shared) Reset(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Reset(seed)
}

// Read calls fn with exclusive read access. fn must not retain r.
func (s *Shared) Read(fn func(r Reader)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.e)
}
