package rng

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). n <= 0 yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Range returns a random float in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}
