package maze

import "errors"

var (
	// ErrInvalidDimensions is returned when a width or height is not positive.
	ErrInvalidDimensions = errors.New("maze: width and height must be positive")
	// ErrTooManyRooms is returned when the grid holds more rooms than there
	// are distinct region labels.
	ErrTooManyRooms = errors.New("maze: room count exceeds the label space")
)
