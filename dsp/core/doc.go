// Package core provides the shared numeric helpers and typed physical units
// used by the sfx primitives.
//
// Frequencies, durations and levels are passed around as [Frequency],
// [Duration] and [Decibel] values instead of bare floats, so that a
// milliseconds value cannot be handed to a parameter that expects Hz:
//
//	decay := core.Milliseconds(100)
//	cutoff := decay.Frequency() // 10 Hz
//	threshold := core.DB(-36).Linear()
package core
