// Package response measures the small-signal magnitude response of
// per-sample processors.
//
// A processor is driven with a scaled unit impulse, the captured impulse
// response is zero-padded and transformed with an FFT, and the bin
// magnitudes are returned for the non-negative frequencies [0, Nyquist].
//
// Adaptive processors (such as a self-modulating smoother) are nonlinear.
// Driving them with a small impulse amplitude keeps them in their linear
// region, so the measured response is that of the base configuration.
//
// # Usage
//
//	ir := response.Impulse(lp, 1e-6, 4096)
//	mag, err := response.Magnitude(ir, 4096)
//	gain, err := response.MagnitudeAt(ir, 1000, 48000, 4096)
package response
