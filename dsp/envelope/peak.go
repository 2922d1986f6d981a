package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// PeakFollower tracks the peak envelope of its input with instantaneous
// attack and exponential decay.
type PeakFollower struct {
	sampleRate float64
	decayTime  core.Duration
	decay      float64
	y          float64
}

// NewPeakFollower creates a follower whose level falls by a factor of e^2
// over the decay duration once the input drops to zero.
func NewPeakFollower(decay core.Duration, sampleRate float64) (*PeakFollower, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	f := &PeakFollower{sampleRate: sampleRate}
	if err := f.SetDecay(decay); err != nil {
		return nil, err
	}

	return f, nil
}

// SetDecay changes the decay duration. The current level is kept.
func (f *PeakFollower) SetDecay(decay core.Duration) error {
	if err := core.ValidateDuration(decay); err != nil {
		return fmt.Errorf("envelope: decay %w", err)
	}

	f.decayTime = decay
	f.decay = math.Exp(-2 / decay.Samples(f.sampleRate))

	return nil
}

// ProcessSample advances the follower by one sample.
func (f *PeakFollower) ProcessSample(x float64) float64 {
	if x > f.y {
		f.y = x
	} else {
		f.y = x + f.decay*(f.y-x)
	}

	return f.y
}

// Value returns the current envelope level without advancing.
func (f *PeakFollower) Value() float64 { return f.y }

// DecayCoefficient returns the per-sample decay multiplier.
func (f *PeakFollower) DecayCoefficient() float64 { return f.decay }

// Decay returns the configured decay duration.
func (f *PeakFollower) Decay() core.Duration { return f.decayTime }

// Reset clears the envelope level.
func (f *PeakFollower) Reset() { f.y = 0 }
