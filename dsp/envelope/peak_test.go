package envelope

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

func TestNewPeakFollower(t *testing.T) {
	tests := []struct {
		name       string
		decay      core.Duration
		sampleRate float64
		wantErr    bool
	}{
		{"valid", core.Milliseconds(100), 48000, false},
		{"zero rate", core.Milliseconds(100), 0, true},
		{"zero decay", 0, 48000, true},
		{"nan decay", core.Duration(math.NaN()), 48000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewPeakFollower(tt.decay, tt.sampleRate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPeakFollower() err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && f == nil {
				t.Fatal("NewPeakFollower() returned nil without error")
			}
		})
	}
}

func TestPeakFollowerInstantAttack(t *testing.T) {
	f, _ := NewPeakFollower(core.Milliseconds(100), 48000)

	if got := f.ProcessSample(0.7); got != 0.7 {
		t.Fatalf("attack=%v want=0.7", got)
	}
	if got := f.ProcessSample(0.9); got != 0.9 {
		t.Fatalf("attack=%v want=0.9", got)
	}
}

func TestPeakFollowerHoldsConstantInput(t *testing.T) {
	f, _ := NewPeakFollower(core.Milliseconds(50), 48000)

	for range 1000 {
		if got := f.ProcessSample(0.4); got != 0.4 {
			t.Fatalf("envelope=%v want=0.4", got)
		}
	}
}

func TestPeakFollowerDecayRate(t *testing.T) {
	const sampleRate = 48000.0

	decay := core.Milliseconds(100)
	f, _ := NewPeakFollower(decay, sampleRate)
	f.ProcessSample(1)

	n := int(decay.Samples(sampleRate))
	var y float64
	for range n {
		y = f.ProcessSample(0)
	}

	want := math.Exp(-2)
	if math.Abs(y-want) > 1e-3 {
		t.Fatalf("level after one decay time=%v want~%v", y, want)
	}
}

func TestPeakFollowerDecaysTowardInput(t *testing.T) {
	f, _ := NewPeakFollower(core.Milliseconds(10), 48000)
	f.ProcessSample(1)

	prev := f.Value()
	for range 10000 {
		y := f.ProcessSample(0.25)
		if y > prev || y < 0.25 {
			t.Fatalf("envelope %v left [0.25, %v]", y, prev)
		}
		prev = y
	}
	if math.Abs(prev-0.25) > 1e-9 {
		t.Fatalf("envelope=%v want=0.25", prev)
	}
}

func TestPeakFollowerSetDecayKeepsLevel(t *testing.T) {
	f, _ := NewPeakFollower(core.Milliseconds(100), 48000)
	f.ProcessSample(0.8)

	if err := f.SetDecay(core.Milliseconds(20)); err != nil {
		t.Fatal(err)
	}
	if f.Value() != 0.8 {
		t.Fatalf("level changed on retune: %v", f.Value())
	}
	if f.Decay() != core.Milliseconds(20) {
		t.Fatalf("decay=%v", f.Decay())
	}
	if c := f.DecayCoefficient(); c <= 0 || c >= 1 {
		t.Fatalf("decay coefficient %v outside (0, 1)", c)
	}

	f.Reset()
	if f.Value() != 0 {
		t.Fatalf("Value() after reset=%v", f.Value())
	}
}
