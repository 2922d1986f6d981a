package detect

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/envelope"
	"github.com/cwbudde/algo-sfx/dsp/filter/onepole"
)

const (
	defaultOnsetSensitivity = 0.6
	defaultOnsetDecayMs     = 100.0

	// onsetHysteresisDB is the comparator dead band between the scaled
	// envelope and its trailing average.
	onsetHysteresisDB = -36.0
)

// OnsetOption mutates Onset constructor configuration.
type OnsetOption func(*onsetConfig) error

type onsetConfig struct {
	sensitivity float64
	decay       core.Duration
	policy      RetunePolicy
}

func defaultOnsetConfig() onsetConfig {
	return onsetConfig{
		sensitivity: defaultOnsetSensitivity,
		decay:       core.Milliseconds(defaultOnsetDecayMs),
		policy:      RetuneKeepState,
	}
}

// WithOnsetSensitivity sets the envelope attenuation used for comparison.
// Lower values require a steeper attack to trigger.
func WithOnsetSensitivity(sensitivity float64) OnsetOption {
	return func(cfg *onsetConfig) error {
		if !core.IsFinite(sensitivity) {
			return fmt.Errorf("detect: onset sensitivity must be finite: %f", sensitivity)
		}

		cfg.sensitivity = sensitivity

		return nil
	}
}

// WithOnsetDecay sets the envelope decay time. The trailing low-pass uses
// the matching cutoff 1/decay.
func WithOnsetDecay(decay core.Duration) OnsetOption {
	return func(cfg *onsetConfig) error {
		if err := core.ValidateDuration(decay); err != nil {
			return fmt.Errorf("detect: onset decay %w", err)
		}

		cfg.decay = decay

		return nil
	}
}

// WithOnsetRetunePolicy selects whether SetDecay and SetSensitivity flush
// the detector state.
func WithOnsetRetunePolicy(p RetunePolicy) OnsetOption {
	return func(cfg *onsetConfig) error {
		if !validRetunePolicy(p) {
			return fmt.Errorf("detect: invalid retune policy: %d", p)
		}

		cfg.policy = p

		return nil
	}
}

// Onset detects attack transients.
//
// A peak envelope follower tracks |x|, and a one-pole low-pass with the
// same time constant trails that envelope. The trailing filter keeps up
// with steady and decaying levels but not with sudden rises. When the
// envelope scaled by the sensitivity exceeds the trailing average by more
// than the comparator dead band, an attack is in progress.
//
// While an attack is in progress ProcessSample returns the largest |x|
// seen since it began; otherwise it returns 0. An attack may span many
// consecutive samples.
type Onset struct {
	sampleRate  float64
	sensitivity float64
	decay       core.Duration
	policy      RetunePolicy

	env  *envelope.PeakFollower
	lp   *onepole.LowPass
	cmp  SchmittTrigger
	peak float64
}

// NewOnset creates an onset detector. Defaults: sensitivity 0.6, decay
// 100 ms, state kept on retune.
func NewOnset(sampleRate float64, opts ...OnsetOption) (*Onset, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("detect: onset %w", err)
	}

	cfg := defaultOnsetConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	env, err := envelope.NewPeakFollower(cfg.decay, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("detect: onset %w", err)
	}

	lp, err := onepole.NewLowPass(cfg.decay.Frequency(), sampleRate)
	if err != nil {
		return nil, fmt.Errorf("detect: onset %w", err)
	}

	o := &Onset{
		sampleRate:  sampleRate,
		sensitivity: cfg.sensitivity,
		decay:       cfg.decay,
		policy:      cfg.policy,
		env:         env,
		lp:          lp,
	}
	o.cmp.SetHysteresis(core.DB(onsetHysteresisDB).Linear())

	return o, nil
}

// ProcessSample advances the detector by one sample and returns the
// attack peak, or 0 when no attack is in progress.
func (o *Onset) ProcessSample(x float64) float64 {
	mag := math.Abs(x)
	env := o.env.ProcessSample(mag)
	trail := o.lp.ProcessSample(env)

	if o.cmp.Compare(env*o.sensitivity, trail) {
		o.peak = math.Max(o.peak, mag)
		return o.peak
	}

	o.peak = 0

	return 0
}

// Value returns the last value returned by ProcessSample.
func (o *Onset) Value() float64 { return o.peak }

// Active reports whether an attack is in progress.
func (o *Onset) Active() bool { return o.cmp.State() }

// Envelope returns the current peak envelope level.
func (o *Onset) Envelope() float64 { return o.env.Value() }

// Sensitivity returns the envelope attenuation factor.
func (o *Onset) Sensitivity() float64 { return o.sensitivity }

// Decay returns the envelope decay time.
func (o *Onset) Decay() core.Duration { return o.decay }

// SampleRate returns the sample rate in Hz.
func (o *Onset) SampleRate() float64 { return o.sampleRate }

// RetunePolicy returns the configured retune policy.
func (o *Onset) RetunePolicy() RetunePolicy { return o.policy }

// SetSensitivity changes the envelope attenuation factor.
func (o *Onset) SetSensitivity(sensitivity float64) error {
	if !core.IsFinite(sensitivity) {
		return fmt.Errorf("detect: onset sensitivity must be finite: %f", sensitivity)
	}

	o.sensitivity = sensitivity
	o.afterRetune()

	return nil
}

// SetDecay retunes both the envelope decay and the trailing low-pass
// cutoff.
func (o *Onset) SetDecay(decay core.Duration) error {
	if err := core.ValidateDuration(decay); err != nil {
		return fmt.Errorf("detect: onset decay %w", err)
	}
	if err := core.ValidateFrequency(decay.Frequency()); err != nil {
		return fmt.Errorf("detect: onset cutoff %w", err)
	}

	if err := o.env.SetDecay(decay); err != nil {
		return fmt.Errorf("detect: onset %w", err)
	}
	if err := o.lp.SetCutoff(decay.Frequency()); err != nil {
		return fmt.Errorf("detect: onset %w", err)
	}

	o.decay = decay
	o.afterRetune()

	return nil
}

func (o *Onset) afterRetune() {
	if o.policy == RetuneResetState {
		o.Reset()
	}
}

// Reset flushes the envelope, trailing filter, comparator and latched
// peak.
func (o *Onset) Reset() {
	o.env.Reset()
	o.lp.Reset()
	o.cmp.Reset()
	o.peak = 0
}
