package ui

import "mad-maze/internal/core"

// Source is what the HUD and overlay need from a running computation.
type Source interface {
	Name() string
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

// MinPanelHeight is the smallest height the HUD panel is drawn at.
const MinPanelHeight = 320
