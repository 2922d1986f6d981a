package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

// LowPass is a one-pole low-pass filter with a fixed cutoff.
type LowPass struct {
	sampleRate float64
	cutoff     core.Frequency
	a          float64
	y          float64
}

// NewLowPass creates a low-pass with the given cutoff frequency.
//
// The cutoff is not checked against the Nyquist limit.
func NewLowPass(cutoff core.Frequency, sampleRate float64) (*LowPass, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("onepole: %w", err)
	}

	f := &LowPass{sampleRate: sampleRate}
	if err := f.SetCutoff(cutoff); err != nil {
		return nil, err
	}

	return f, nil
}

// SetCutoff retunes the filter. The output state is kept.
func (f *LowPass) SetCutoff(cutoff core.Frequency) error {
	if err := core.ValidateFrequency(cutoff); err != nil {
		return fmt.Errorf("onepole: cutoff %w", err)
	}

	f.cutoff = cutoff
	f.a = 1 - math.Exp(-2*math.Pi*cutoff.Normalized(f.sampleRate))

	return nil
}

// ProcessSample advances the filter by one sample.
func (f *LowPass) ProcessSample(x float64) float64 {
	f.y += f.a * (x - f.y)
	return f.y
}

// Value returns the current output without advancing.
func (f *LowPass) Value() float64 { return f.y }

// Coefficient returns the smoothing coefficient a.
func (f *LowPass) Coefficient() float64 { return f.a }

// Cutoff returns the configured cutoff frequency.
func (f *LowPass) Cutoff() core.Frequency { return f.cutoff }

// SampleRate returns the sample rate in Hz.
func (f *LowPass) SampleRate() float64 { return f.sampleRate }

// Reset clears the output state.
func (f *LowPass) Reset() { f.y = 0 }
