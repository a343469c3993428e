//go:build ebiten

package app

import (
	"time"

	"mad-maze/internal/core"
	"mad-maze/internal/maze"
	"mad-maze/internal/render"
	"mad-maze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a maze engine to the ebiten.Game interface.
type Game struct {
	engine  *maze.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	rate     int
	maxSteps int
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine.
func New(e *maze.Engine, cfg *Config) *Game {
	size := e.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		engine:   e,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(e, cfg.HUDWidth),
		overlay:  ui.NewOverlay(e, scale),
		pacer:    core.NewFixedStep(cfg.Rate),
		rate:     cfg.Rate,
		maxSteps: cfg.StepsPerTick(),
		scale:    scale,
		seed:     cfg.Seed,
	}
}

// Reset starts a new maze with the provided seed. Dimension changes made
// through the HUD take effect here.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.engine.Reset(seed)
	g.tickOnce = false
	size := g.engine.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
		ebiten.SetWindowSize(g.Layout(0, 0))
	}
}

// Update handles per-frame logic and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setRate(g.rate * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setRate(g.rate / 2)
	}

	size := g.engine.Size()
	g.hud.Update(size.W * g.scale)
	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.engine.Step()
		g.tickOnce = false
	case !g.paused:
		core.Advance(g.engine, g.pacer.Due(g.maxSteps))
	}
	return nil
}

func (g *Game) setRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	g.rate = rate
	g.pacer.SetRate(rate)
	g.maxSteps = (&Config{Rate: rate, TPS: ebiten.TPS()}).StepsPerTick()
}

// Draw renders the current maze state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine, g.scale)
	g.overlay.Draw(screen)
	size := g.engine.Size()
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	w, h := s.W*g.scale, s.H*g.scale
	if hw := g.hud.Width(); hw > 0 {
		w += hw
		if h < ui.MinPanelHeight {
			h = ui.MinPanelHeight
		}
	}
	return w, h
}
