package maze

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config controls the maze dimensions, loop density and randomness.
type Config struct {
	Width  int
	Height int

	// Loops is the fraction of leftover walls opened after construction.
	Loops float64

	// Seed drives every random choice. Zero reseeds from the wall clock.
	Seed int64

	Logger logrus.FieldLogger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 144,
		Loops:  0.01,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["loops"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Loops = clamp01(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
