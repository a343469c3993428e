package core

import "time"

// FixedStep paces updates at a steady steps-per-second rate, independent of
// how often the caller polls it. A rate of zero or less disables pacing.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		f.step = 0
		return
	}
	f.step = time.Second / time.Duration(rate)
}

// Unthrottled reports whether pacing is disabled.
func (f *FixedStep) Unthrottled() bool { return f.step == 0 }

func (f *FixedStep) tick() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
}

// ShouldStep reports whether one more step is owed.
func (f *FixedStep) ShouldStep() bool {
	if f.Unthrottled() {
		return true
	}
	f.tick()
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Due returns how many steps are owed right now, at most max. Debt beyond max
// is dropped so a stalled caller does not burst afterwards.
func (f *FixedStep) Due(max int) int {
	if max <= 0 {
		return 0
	}
	if f.Unthrottled() {
		return max
	}
	f.tick()
	n := int(f.accumulator / f.step)
	if n > max {
		n = max
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
