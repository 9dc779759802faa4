package clock

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	clock       Clock
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(c Clock, tps int) *FixedStep {
	if c == nil {
		c = Real{}
	}
	fs := &FixedStep{clock: c}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the fixed delta between ticks.
func (f *FixedStep) Step() time.Duration { return f.step }

// Due reports how many ticks should run since the previous call. The
// accumulator is capped so a stalled host does not spiral.
func (f *FixedStep) Due() int {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if limit := 5 * f.step; f.accumulator > limit {
		f.accumulator = limit
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}
