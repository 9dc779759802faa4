package clock

import "time"

// DefaultStep is the per-tick delta for a 60 TPS host loop.
const DefaultStep = time.Second / 60

// Clock supplies monotonic timestamps to the simulation.
type Clock interface {
	Now() time.Time
}

// Real reads the system monotonic clock.
type Real struct{}

// Now returns time.Now, which carries a monotonic reading.
func (Real) Now() time.Time { return time.Now() }

// Manual is a controllable clock for tests and headless runs.
type Manual struct {
	now time.Time
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time { return m.now }

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) { m.now = t }

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.now = m.now.Add(d)
	return m.now
}
