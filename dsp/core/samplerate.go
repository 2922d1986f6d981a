package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSampleRate is returned when a sample rate is not finite and > 0.
var ErrInvalidSampleRate = errors.New("sample rate must be > 0 and finite")

// ValidateSampleRate checks that sampleRate can be used to derive
// per-sample coefficients.
func ValidateSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || !IsFinite(sampleRate) {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	return nil
}

// ValidateFrequency checks that f is finite and > 0. The Nyquist limit is
// not enforced here.
func ValidateFrequency(f Frequency) error {
	if f <= 0 || !IsFinite(float64(f)) {
		return fmt.Errorf("frequency must be > 0 and finite: %f", float64(f))
	}

	return nil
}

// ValidateDuration checks that d is finite and > 0 and that its reciprocal
// frequency is finite.
func ValidateDuration(d Duration) error {
	if d <= 0 || !IsFinite(float64(d)) || !IsFinite(float64(d.Frequency())) {
		return fmt.Errorf("duration must be > 0 and finite with a finite reciprocal: %g", float64(d))
	}

	return nil
}
