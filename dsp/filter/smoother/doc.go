// Package smoother provides a dynamic smoothing filter that uses the
// bandpass output of a two-pole cascade to modulate its own cutoff.
//
// The algorithm follows "Dynamic Smoothing Using Self Modulating Filter"
// (Andrew Simper, Cytomic, 2014). The difference between the two cascaded
// low-pass stages approximates how fast the signal is moving. Its absolute
// value raises the effective coefficient, so the filter tracks fast changes
// with little lag and smooths heavily when the signal settles.
//
// The effective coefficient is clamped to 1, which keeps the filter stable
// for any bandpass magnitude. The base cutoff must stay well below half the
// sample rate; tan(pi*f/fs) diverges at the Nyquist limit and this is not
// checked.
package smoother
