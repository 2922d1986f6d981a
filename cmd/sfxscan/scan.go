package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/detect"
	"github.com/cwbudde/algo-sfx/dsp/envelope"
	"github.com/cwbudde/algo-sfx/dsp/filter/onepole"
	"github.com/cwbudde/algo-sfx/dsp/filter/smoother"
	"github.com/cwbudde/algo-sfx/dsp/resample"
)

// Debug output channel layout.
const (
	chInput = iota
	chSmoothed
	chOnset
	chZeroCross
	chPeak
	chEnvelope
	chLevel
	numChannels
)

const pulseLevel = 0.8

type scanConfig struct {
	onsetSensitivity float64
	decay            core.Duration
	zeroCrossHyst    float64
	peakSensitivity  float64
	peakHyst         float64
	smoothBase       core.Frequency
	smoothSense      float64
	attack           core.Duration
}

func defaultScanConfig() scanConfig {
	return scanConfig{
		onsetSensitivity: 0.6,
		decay:            core.Milliseconds(100),
		zeroCrossHyst:    0.01,
		peakSensitivity:  0.9,
		peakHyst:         0.01,
		smoothBase:       core.Hz(10),
		smoothSense:      0.5,
		attack:           core.Milliseconds(10),
	}
}

// onsetEvent is one detected attack.
type onsetEvent struct {
	Index int
	Time  float64
	Peak  float64
}

type scanResult struct {
	Channels int
	Debug    []float64
	Onsets   []onsetEvent
}

// scanner drives every primitive over one signal, one sample at a time.
type scanner struct {
	sampleRate float64

	onset     *detect.Onset
	zeroCross *detect.ZeroCross
	peak      *detect.Peak
	env       *envelope.PeakFollower
	smooth    *smoother.DynamicSmoother
	level     onepole.DynamicLowPass

	attackCoeff  float64
	releaseCoeff float64
}

func newScanner(sampleRate float64, cfg scanConfig) (*scanner, error) {
	onset, err := detect.NewOnset(sampleRate,
		detect.WithOnsetSensitivity(cfg.onsetSensitivity),
		detect.WithOnsetDecay(cfg.decay),
	)
	if err != nil {
		return nil, err
	}

	env, err := envelope.NewPeakFollower(cfg.decay, sampleRate)
	if err != nil {
		return nil, err
	}

	smooth, err := smoother.New(sampleRate,
		smoother.WithBaseFrequency(cfg.smoothBase),
		smoother.WithSensitivity(cfg.smoothSense),
	)
	if err != nil {
		return nil, err
	}

	if err := core.ValidateDuration(cfg.attack); err != nil {
		return nil, fmt.Errorf("attack %w", err)
	}

	return &scanner{
		sampleRate:   sampleRate,
		onset:        onset,
		zeroCross:    detect.NewZeroCross(cfg.zeroCrossHyst),
		peak:         detect.NewPeak(cfg.peakSensitivity, cfg.peakHyst),
		env:          env,
		smooth:       smooth,
		attackCoeff:  timeToCoeff(cfg.attack, sampleRate),
		releaseCoeff: timeToCoeff(cfg.decay, sampleRate),
	}, nil
}

// timeToCoeff returns the one-pole coefficient with time constant d.
func timeToCoeff(d core.Duration, sampleRate float64) float64 {
	return 1 - math.Exp(-1/d.Samples(sampleRate))
}

// run processes in and returns the interleaved debug signal together with
// the detected onsets.
func (s *scanner) run(in []float64) scanResult {
	res := scanResult{
		Channels: numChannels,
		Debug:    make([]float64, len(in)*numChannels),
	}

	norm := 1.0
	if m := maxAbs(in); m > 0 {
		norm = 1 / m
	}

	active := -1
	for i, x := range in {
		o := s.onset.ProcessSample(x)
		e := s.env.ProcessSample(math.Abs(x))

		coeff := s.releaseCoeff
		target := 0.0
		if o != 0 {
			coeff = s.attackCoeff
			target = o
		}

		frame := res.Debug[i*numChannels : (i+1)*numChannels]
		frame[chInput] = x * norm
		frame[chSmoothed] = s.smooth.ProcessSample(e)
		frame[chOnset] = o
		frame[chZeroCross] = pulse(s.zeroCross.ProcessSample(x))
		frame[chPeak] = pulse(s.peak.ProcessSample(x, e))
		frame[chEnvelope] = e
		frame[chLevel] = s.level.ProcessSample(target, coeff)

		switch {
		case o != 0 && active < 0:
			active = len(res.Onsets)
			res.Onsets = append(res.Onsets, onsetEvent{
				Index: i,
				Time:  float64(i) / s.sampleRate,
				Peak:  o,
			})
		case o != 0:
			res.Onsets[active].Peak = o
		default:
			active = -1
		}
	}

	return res
}

var errOddSampleRate = errors.New("sfxscan: -downsample needs an even sample rate")

// halfSampleRate returns sampleRate/2. Odd rates have no integer half and
// are rejected.
func halfSampleRate(sampleRate int) (int, error) {
	if sampleRate%2 != 0 {
		return 0, fmt.Errorf("%w: %d Hz", errOddSampleRate, sampleRate)
	}

	return sampleRate / 2, nil
}

// downsample halves the sample rate of in. A trailing odd sample is
// dropped.
func downsample(in []float64) []float64 {
	var d resample.FastDownsampler[float64]

	out := make([]float64, len(in)/2)
	for i := range out {
		out[i] = d.Process(in[2*i], in[2*i+1])
	}

	return out
}

func pulse(b bool) float64 {
	if b {
		return pulseLevel
	}
	return 0
}

func maxAbs(in []float64) float64 {
	m := 0.0
	for _, x := range in {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
