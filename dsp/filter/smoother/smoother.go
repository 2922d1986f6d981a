package smoother

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

const (
	defaultBaseFrequencyHz = 10.0
	defaultSensitivity     = 0.5

	// sensitivityScale maps the user sensitivity to a linear coefficient
	// increment per unit of bandpass magnitude.
	sensitivityScale = 4.0
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	base        core.Frequency
	sensitivity float64
}

func defaultConfig() config {
	return config{
		base:        core.Hz(defaultBaseFrequencyHz),
		sensitivity: defaultSensitivity,
	}
}

// WithBaseFrequency sets the cutoff used while the signal is steady.
func WithBaseFrequency(base core.Frequency) Option {
	return func(cfg *config) error {
		if err := core.ValidateFrequency(base); err != nil {
			return fmt.Errorf("smoother: base %w", err)
		}

		cfg.base = base

		return nil
	}
}

// WithSensitivity sets how strongly signal movement raises the cutoff.
// Must be finite and >= 0.
func WithSensitivity(sensitivity float64) Option {
	return func(cfg *config) error {
		if sensitivity < 0 || !core.IsFinite(sensitivity) {
			return fmt.Errorf("smoother: sensitivity must be >= 0 and finite: %f", sensitivity)
		}

		cfg.sensitivity = sensitivity

		return nil
	}
}

// DynamicSmoother is a self-modulating two-stage low-pass.
type DynamicSmoother struct {
	sampleRate float64
	base       core.Frequency
	sense      float64

	wc float64
	g0 float64
	g  float64

	low1 float64
	low2 float64
}

// New creates a dynamic smoother. Defaults: 10 Hz base cutoff, sensitivity
// 0.5.
func New(sampleRate float64, opts ...Option) (*DynamicSmoother, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("smoother: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &DynamicSmoother{
		sampleRate: sampleRate,
		sense:      cfg.sensitivity * sensitivityScale,
	}
	s.retune(cfg.base)
	s.g = s.g0

	return s, nil
}

// SetBaseFrequency retunes the steady-state cutoff. Both stages keep their
// state, so smoothing continues without a discontinuity.
func (s *DynamicSmoother) SetBaseFrequency(base core.Frequency) error {
	if err := core.ValidateFrequency(base); err != nil {
		return fmt.Errorf("smoother: base %w", err)
	}

	s.retune(base)

	return nil
}

func (s *DynamicSmoother) retune(base core.Frequency) {
	s.base = base
	s.wc = base.Normalized(s.sampleRate)
	gc := math.Tan(math.Pi * s.wc)
	s.g0 = 2 * gc / (1 + gc)
}

// ProcessSample advances the filter and returns the second stage output
// from before this sample's update. The result therefore lags the internal
// state by one sample.
func (s *DynamicSmoother) ProcessSample(x float64) float64 {
	low1z := s.low1
	low2z := s.low2
	bandz := low1z - low2z

	s.g = math.Min(s.g0+s.sense*math.Abs(bandz), 1)
	s.low1 = low1z + s.g*(x-low1z)
	s.low2 = low2z + s.g*(s.low1-low2z)

	return low2z
}

// Value returns the current second stage state, i.e. what the next call
// to ProcessSample will return.
func (s *DynamicSmoother) Value() float64 { return s.low2 }

// Coefficient returns the effective coefficient used by the most recent
// call, or the base coefficient before the first call.
func (s *DynamicSmoother) Coefficient() float64 { return s.g }

// BaseCoefficient returns the coefficient derived from the base cutoff.
func (s *DynamicSmoother) BaseCoefficient() float64 { return s.g0 }

// BaseFrequency returns the steady-state cutoff.
func (s *DynamicSmoother) BaseFrequency() core.Frequency { return s.base }

// Sensitivity returns the sensitivity as configured (unscaled).
func (s *DynamicSmoother) Sensitivity() float64 { return s.sense / sensitivityScale }

// SampleRate returns the sample rate in Hz.
func (s *DynamicSmoother) SampleRate() float64 { return s.sampleRate }

// Reset clears both stages.
func (s *DynamicSmoother) Reset() {
	s.low1 = 0
	s.low2 = 0
	s.g = s.g0
}
