package rng

import "testing"

func TestDeterministicSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 50; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d diverged: %f vs %f", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		v := r.Range(-0.05, 0.05)
		if v < -0.05 || v >= 0.05 {
			t.Fatalf("value %f outside [-0.05, 0.05)", v)
		}
	}
	if got := r.Range(2, 2); got != 2 {
		t.Fatalf("empty range should return lo, got %f", got)
	}
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
}
