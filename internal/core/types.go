package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// Stepper is a computation advanced one bounded unit of work per call.
type Stepper interface {
	Step()
	Done() bool
}

// Advance calls Step up to n times, stopping early once s reports done. It
// returns the number of steps taken.
func Advance(s Stepper, n int) int {
	taken := 0
	for taken < n && !s.Done() {
		s.Step()
		taken++
	}
	return taken
}
