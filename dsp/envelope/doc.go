// Package envelope provides amplitude envelope followers for detector
// side chains.
//
// PeakFollower rises instantly to any input above its current level and
// otherwise decays exponentially toward the input. Feed it rectified
// samples (|x|) to track a signal's peak envelope.
package envelope
