package onepole

// DynamicLowPass is a one-pole low-pass whose coefficient is supplied with
// each sample. The zero value is ready to use.
//
// The coefficient is expected in [0, 1] and is not validated. Values
// outside that range give a defined but possibly unstable result.
type DynamicLowPass struct {
	y float64
}

// ProcessSample moves the state toward x by the fraction a and returns it.
func (f *DynamicLowPass) ProcessSample(x, a float64) float64 {
	f.y += a * (x - f.y)
	return f.y
}

// Value returns the current state without advancing.
func (f *DynamicLowPass) Value() float64 { return f.y }

// Set overwrites the state, e.g. to seed the filter with a known level.
func (f *DynamicLowPass) Set(y float64) { f.y = y }

// Reset clears the state.
func (f *DynamicLowPass) Reset() { f.y = 0 }
