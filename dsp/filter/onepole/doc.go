// Package onepole provides single-pole (6 dB/oct) low-pass filters.
//
// LowPass derives its coefficient from a cutoff frequency once, at
// construction or on retune. DynamicLowPass takes the coefficient on every
// call, which lets an external control signal drive the smoothing amount
// sample by sample.
//
// Both filters share the update y += a*(x - y). A coefficient of 1 passes
// the input through with no lag, a coefficient of 0 freezes the output.
package onepole
