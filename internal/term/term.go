// Package term draws a running maze in a terminal with tcell. One goroutine
// steps the engine at a paced rate while another handles keys and redraws;
// both go through maze.Shared.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"mad-maze/internal/core"
	"mad-maze/internal/maze"
	"mad-maze/internal/render"
)

// Options configures the terminal viewer.
type Options struct {
	// Rate is the engine steps per second. Zero or less is unthrottled.
	Rate int
	// FPS is the redraw rate.
	FPS int
	// Seed is used by the reset key.
	Seed   int64
	Logger logrus.FieldLogger
}

var errQuit = errors.New("quit requested")

type viewer struct {
	screen tcell.Screen
	shared *maze.Shared
	opts   Options
	log    logrus.FieldLogger

	paused atomic.Bool
}

// Run shows shared on screen until the user quits or ctx is cancelled. The
// screen must already be initialised; Run does not finalise it.
func Run(ctx context.Context, screen tcell.Screen, shared *maze.Shared, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	v := &viewer{screen: screen, shared: shared, opts: opts, log: log}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return v.stepLoop(ctx) })
	g.Go(func() error { return v.uiLoop(ctx, events) })

	log.WithFields(logrus.Fields{"rate": opts.Rate, "fps": opts.FPS}).Debug("terminal viewer started")
	err := g.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}
	log.WithError(err).Debug("terminal viewer stopped")
	return err
}

func (v *viewer) frame() time.Duration { return time.Second / time.Duration(v.opts.FPS) }

func (v *viewer) stepLoop(ctx context.Context) error {
	pacer := core.NewFixedStep(v.opts.Rate)
	limit := 1 << 12
	if v.opts.Rate > 0 {
		limit = 2 * (v.opts.Rate/v.opts.FPS + 1)
	}
	ticker := time.NewTicker(v.frame())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if v.paused.Load() {
			continue
		}
		if n := pacer.Due(limit); n > 0 {
			v.shared.Advance(n)
		}
	}
}

func (v *viewer) uiLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(v.frame())
	defer ticker.Stop()
	v.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := v.handle(ev); err != nil {
				return err
			}
		case <-ticker.C:
			v.draw()
		}
	}
}

func (v *viewer) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return errQuit
		case tcell.KeyEnter:
			v.paused.Store(false)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return errQuit
			case ' ':
				v.paused.Store(!v.paused.Load())
			case 'n':
				v.shared.Step()
			case 'r':
				v.shared.Reset(v.opts.Seed)
			case 's':
				v.shared.Reset(time.Now().UnixNano())
			}
		}
		v.draw()
	}
	return nil
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.shared.Read(func(r maze.Reader) {
		drawMaze(v.screen, r)
		drawStatus(v.screen, r, v.paused.Load())
	})
	v.screen.Show()
}

// drawMaze packs two grid rows into each terminal row using an upper half
// block: the foreground is the top cell and the background the bottom one.
func drawMaze(s tcell.Screen, r maze.Reader) {
	sw, sh := s.Size()
	w, h := r.Dimensions()
	rows := sh - 1
	for ty := 0; ty < rows && 2*ty < h; ty++ {
		for x := 0; x < w && x < sw; x++ {
			top := render.ColorOf(r.CellAt(x, 2*ty))
			style := tcell.StyleDefault.Foreground(termColor(top))
			if y := 2*ty + 1; y < h {
				style = style.Background(termColor(render.ColorOf(r.CellAt(x, y))))
			}
			s.SetContent(x, ty, '▀', nil, style)
		}
	}
}

func drawStatus(s tcell.Screen, r maze.Reader, paused bool) {
	_, sh := s.Size()
	if sh <= 0 {
		return
	}
	st := r.Stats()
	line := fmt.Sprintf(" %s  steps %d  path %d ", r.Phase(), st.Steps, st.PathLength)
	if paused {
		line += "(paused) "
	}
	line += " space pause  n step  r reset  s new seed  q quit"
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, c := range line {
		s.SetContent(x, sh-1, c, nil, style)
		x++
	}
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
