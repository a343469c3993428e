package maze

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"mad-maze/internal/core"
)

// Phase is the stage an Engine is in. Phases are entered in declaration order.
type Phase uint8

const (
	PhaseConstructing Phase = iota
	PhaseLoopBreaking
	PhaseLabeling
	PhaseTracing
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructing:
		return "constructing"
	case PhaseLoopBreaking:
		return "loop-breaking"
	case PhaseLabeling:
		return "labeling"
	case PhaseTracing:
		return "tracing"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Stats summarises a run.
type Stats struct {
	Rooms       int
	Walls       int
	Carved      int
	LoopsBroken int
	PathLength  int
	Steps       int
	PhaseSteps  [PhaseDone]int
	Elapsed     time.Duration
	Solved      bool
}

// View is read access to cell states for drawing and analysis.
type View interface {
	Dimensions() (int, int)
	CellAt(x, y int) CellView
}

// Engine generates and solves one maze, one bounded unit of work per Step.
// It is not safe for concurrent use; see Shared.
type Engine struct {
	cfg Config
	log logrus.FieldLogger

	grid    *Grid
	labels  *LabelAllocator
	carver  *carver
	labeler *labeler
	tracer  *tracer

	entrance Point
	goal     Point

	phase   Phase
	stats   Stats
	started time.Time
}

// New creates an engine for a width x height grid using default settings
// otherwise.
func New(width, height int, loops float64) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Loops = loops
	return NewWithConfig(cfg)
}

// NewWithConfig creates an engine from cfg and prepares the first maze.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := validate(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	cfg.Loops = clamp01(cfg.Loops)
	e := &Engine{cfg: cfg, log: cfg.logger()}
	e.Reset(0)
	return e, nil
}

func validate(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("maze %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if rooms := (oddUp(w) / 2) * (oddUp(h) / 2); rooms > maxLabels {
		return fmt.Errorf("maze %dx%d has %d rooms: %w", w, h, rooms, ErrTooManyRooms)
	}
	return nil
}

// Reset discards the current maze and starts a new one. A zero seed falls
// back to the configured seed.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	// Dimensions were validated by the constructor or the setters.
	e.grid, _ = NewGrid(e.cfg.Width, e.cfg.Height)
	e.labels = NewLabelAllocator(effective)
	e.carver = newCarver(e.grid, e.labels)
	e.labeler = nil
	e.tracer = nil
	e.entrance = Point{0, 1}
	e.goal = Point{e.grid.W - 1, e.grid.H - 2}
	e.stats = Stats{Rooms: e.grid.RoomCount(), Walls: e.grid.WallCount()}
	e.started = time.Now()

	switch {
	case e.stats.Rooms == 0:
		e.phase = PhaseDone
	case e.carver.done():
		e.phase = PhaseLoopBreaking
	default:
		e.phase = PhaseConstructing
	}
	e.log.WithFields(logrus.Fields{
		"width":  e.grid.W,
		"height": e.grid.H,
		"rooms":  e.stats.Rooms,
		"loops":  e.cfg.Loops,
	}).Info("maze reset")
}

// Step performs one unit of work for the active phase: one region merge, the
// loop-breaking pass, one frontier drain or one backtrace hop. It does
// nothing once the engine is done.
func (e *Engine) Step() {
	if e.phase == PhaseDone {
		return
	}
	e.stats.Steps++
	e.stats.PhaseSteps[e.phase]++

	switch e.phase {
	case PhaseConstructing:
		e.carver.step()
		e.stats.Carved = e.carver.carved
		if e.carver.done() {
			e.enter(PhaseLoopBreaking)
		}
	case PhaseLoopBreaking:
		e.stats.LoopsBroken = breakLoops(e.grid, e.labels, e.cfg.Loops, e.carver.open, e.carver.survivor)
		e.log.WithField("walls_broken", e.stats.LoopsBroken).Info("extra walls broken")
		e.prepareSolve()
		e.enter(PhaseLabeling)
	case PhaseLabeling:
		e.labeler.drain()
		if e.labeler.complete() {
			e.beginTrace()
		}
	case PhaseTracing:
		e.tracer.hop()
		e.stats.PathLength = len(e.tracer.path)
		if e.tracer.complete() {
			e.finish()
		}
	}
}

// prepareSolve turns every carved cell into an unvisited distance, opens the
// entrance and seeds the flood at the goal.
func (e *Engine) prepareSolve() {
	relabel(e.grid, Point{1, 1}, e.carver.survivor, Distance(Unvisited))
	e.grid.Set(e.entrance.X, e.entrance.Y, Distance(EntranceOpen))
	e.grid.Set(e.goal.X, e.goal.Y, Distance(0))
	e.labeler = newLabeler(e.grid, e.entrance, e.goal)
}

func (e *Engine) beginTrace() {
	if !e.labeler.reached() {
		e.log.WithField("drains", e.labeler.drains).Warn("flood exhausted before reaching the entrance")
		e.finish()
		return
	}
	e.grid.Set(e.entrance.X, e.entrance.Y, OnPath())
	e.tracer = newTracer(e.grid, e.entrance, e.goal)
	e.stats.PathLength = 1
	e.enter(PhaseTracing)
}

func (e *Engine) finish() {
	e.stats.Elapsed = time.Since(e.started)
	e.stats.Solved = e.tracer != nil && e.tracer.arrived()
	e.enter(PhaseDone)
	e.log.WithFields(logrus.Fields{
		"elapsed":     e.stats.Elapsed,
		"path_length": e.stats.PathLength,
		"solved":      e.stats.Solved,
	}).Info("maze finished")
}

func (e *Engine) enter(p Phase) {
	e.phase = p
	e.log.WithFields(logrus.Fields{
		"phase": p.String(),
		"steps": e.stats.Steps,
	}).Debug("phase change")
}

// Name identifies the computation for front ends.
func (e *Engine) Name() string { return "maze" }

// Done reports whether the traced path has reached the goal, or the run
// ended without one.
func (e *Engine) Done() bool { return e.phase == PhaseDone }

// Solved reports whether the run ended with a complete path.
func (e *Engine) Solved() bool { return e.stats.Solved }

// Phase returns the active phase.
func (e *Engine) Phase() Phase { return e.phase }

// Stats returns counters for the current run.
func (e *Engine) Stats() Stats { return e.stats }

// Dimensions returns the normalised grid size.
func (e *Engine) Dimensions() (int, int) { return e.grid.W, e.grid.H }

// Size returns the grid size.
func (e *Engine) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// CellAt returns the drawable view of (x, y). Out-of-range coordinates read
// as walls.
func (e *Engine) CellAt(x, y int) CellView { return e.grid.CellAt(x, y) }

// Entrance returns the boundary opening the trace starts from.
func (e *Engine) Entrance() Point { return e.entrance }

// Goal returns the boundary opening the flood starts from.
func (e *Engine) Goal() Point { return e.goal }

// Path returns the cells marked so far by the backtrace, entrance first.
func (e *Engine) Path() []Point {
	if e.tracer == nil {
		return nil
	}
	out := make([]Point, len(e.tracer.path))
	copy(out, e.tracer.path)
	return out
}

// Snapshot returns a copy of the grid.
func (e *Engine) Snapshot() *Grid { return e.grid.Clone() }

// Dimensions returns the grid size.
func (g *Grid) Dimensions() (int, int) { return g.W, g.H }

// CellAt returns the drawable view of (x, y).
func (g *Grid) CellAt(x, y int) CellView {
	c, _ := g.At(x, y)
	return c.view()
}
