package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"mad-maze/internal/maze"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Width  int
	Height int
	Loops  float64
	Seed   int64

	Scale    int
	TPS      int
	Rate     int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := maze.DefaultConfig()
	return &Config{
		Width:    def.Width,
		Height:   def.Height,
		Loops:    def.Loops,
		Seed:     def.Seed,
		Scale:    4,
		TPS:      60,
		Rate:     960,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Width, "width", "W", c.Width, "maze width in cells (rounded up to odd)")
	fs.IntVarP(&c.Height, "height", "H", c.Height, "maze height in cells (rounded up to odd)")
	fs.Float64Var(&c.Loops, "loops", c.Loops, "fraction of leftover walls opened after construction (0..1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for the wall clock")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "engine steps per second, 0 for unthrottled")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the control panel, 0 to hide it")
}

// Maze returns the engine configuration described by c.
func (c *Config) Maze(log logrus.FieldLogger) maze.Config {
	return maze.Config{
		Width:  c.Width,
		Height: c.Height,
		Loops:  c.Loops,
		Seed:   c.Seed,
		Logger: log,
	}
}

// StepsPerTick is the most engine steps one frame may run.
func (c *Config) StepsPerTick() int {
	if c.Rate <= 0 {
		return maxUnthrottledSteps
	}
	tps := c.TPS
	if tps <= 0 {
		tps = 60
	}
	n := (c.Rate + tps - 1) / tps
	// Allow catching up after a slow frame.
	return 2 * n
}

const maxUnthrottledSteps = 1 << 14
