package maze

import (
	"strconv"

	"mad-maze/internal/core"
)

// Parameters reports the configuration and progress of the current run.
func (e *Engine) Parameters() core.ParameterSnapshot {
	s := e.stats
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				intParam("w", "Width", e.cfg.Width),
				intParam("h", "Height", e.cfg.Height),
				floatParam("loops", "Loops", e.cfg.Loops),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				textParam("phase", "Phase", e.phase.String()),
				intParam("steps", "Steps", s.Steps),
				intParam("carved", "Carved walls", s.Carved),
				intParam("loops_broken", "Loops broken", s.LoopsBroken),
				intParam("path", "Path length", s.PathLength),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust. Changes apply on the
// next Reset.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 2, Min: 1, HasMin: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 2, Min: 1, HasMin: true},
		{Key: "loops", Label: "Loops", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates the pending width or height.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		if validate(value, e.cfg.Height) != nil {
			return false
		}
		e.cfg.Width = value
	case "h":
		if validate(e.cfg.Width, value) != nil {
			return false
		}
		e.cfg.Height = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates the pending loop fraction.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != "loops" {
		return false
	}
	e.cfg.Loops = clamp01(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
