package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestStep(t *testing.T) {
	s := Step(2, 0.7, 5)
	want := []float64{0, 0, 0.7, 0.7, 0.7}
	RequireSliceNearlyEqual(t, s, want, 0)
}

func TestCountEdges(t *testing.T) {
	p := []bool{false, true, true, false, true, false, false, true}
	if got := CountRisingEdges(p); got != 3 {
		t.Fatalf("CountRisingEdges = %d, want 3", got)
	}
	if got := CountTransitions(p); got != 5 {
		t.Fatalf("CountTransitions = %d, want 5", got)
	}
}
