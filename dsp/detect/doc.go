// Package detect provides per-sample event detectors built on a threshold
// comparator with hysteresis.
//
// Included detectors:
//   - SchmittTrigger: latched comparator with a symmetric dead band.
//   - ZeroCross: pulse state that flips on each zero crossing.
//   - Onset: feature-based attack detector returning the attack peak.
//   - Peak: pulse state that is high near the peaks of a waveform,
//     measured against a caller-supplied envelope.
//
// All detectors are stateful and deterministic. One call advances one
// sample period, nothing is allocated on the processing path, and no
// detector is safe for concurrent use.
//
// Retuning an Onset or ZeroCross at run time keeps the internal envelope
// and comparator state by default, so detection continues seamlessly.
// Construct them with RetuneResetState to flush that state on every retune
// instead.
package detect
