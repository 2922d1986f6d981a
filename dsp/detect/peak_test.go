package detect

import (
	"testing"

	"github.com/cwbudde/algo-sfx/internal/testutil"
)

func TestPeakPulsesNearMaxima(t *testing.T) {
	const (
		sampleRate = 48000.0
		freq       = 100.0
	)

	in := testutil.DeterministicSine(freq, sampleRate, 1, int(sampleRate))
	p := NewPeak(0.9, 0.01)

	pulses := make([]bool, len(in))
	for i, x := range in {
		pulses[i] = p.ProcessSample(x, 1)
		if pulses[i] && x < 0.89 {
			t.Fatalf("sample %d: pulse high at %v, far from a peak", i, x)
		}
	}

	if got := testutil.CountRisingEdges(pulses); got != int(freq) {
		t.Fatalf("pulses=%d want=%d", got, int(freq))
	}
}

func TestPeakSuppressedBelowHysteresis(t *testing.T) {
	p := NewPeak(0.9, 0.01)

	// Local variation of +-0.002 around the reference never clears the band.
	in := testutil.DeterministicSine(100, 48000, 0.002, 4800)
	for i, x := range in {
		if p.ProcessSample(0.9+x, 1) {
			t.Fatalf("sample %d: unexpected pulse", i)
		}
	}
}

func TestPeakFollowsCallerEnvelope(t *testing.T) {
	p := NewPeak(0.5, 0)

	if p.ProcessSample(0.4, 1) {
		t.Fatal("0.4 should be below 0.5*1")
	}
	if !p.ProcessSample(0.4, 0.6) {
		t.Fatal("0.4 should be above 0.5*0.6")
	}
	if !p.State() {
		t.Fatal("State() should report the latch")
	}

	p.Reset()
	if p.State() {
		t.Fatal("Reset did not release the latch")
	}
	if p.Sensitivity() != 0.5 || p.Hysteresis() != 0 {
		t.Fatalf("sensitivity=%v hysteresis=%v", p.Sensitivity(), p.Hysteresis())
	}
}
