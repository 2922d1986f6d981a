package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Step generates silence for the first at samples followed by a constant
// level for the rest of the signal.
func Step(at int, level float64, length int) []float64 {
	out := make([]float64, length)
	for i := max(at, 0); i < length; i++ {
		out[i] = level
	}
	return out
}

// CountRisingEdges counts false-to-true transitions in a pulse train.
// The initial state is taken as false.
func CountRisingEdges(pulses []bool) int {
	count := 0
	prev := false
	for _, p := range pulses {
		if p && !prev {
			count++
		}
		prev = p
	}
	return count
}

// CountTransitions counts every state change in a pulse train, starting
// from false.
func CountTransitions(pulses []bool) int {
	count := 0
	prev := false
	for _, p := range pulses {
		if p != prev {
			count++
		}
		prev = p
	}
	return count
}
