package detect

// SchmittTrigger compares a value against a reference with hysteresis.
//
// The latched output goes high once the value exceeds the reference by
// more than half the hysteresis width, and goes low once it falls below
// the reference by more than half the width. Inside the band the previous
// output is held.
type SchmittTrigger struct {
	hysteresis float64
	half       float64
	state      bool
}

// NewSchmittTrigger creates a comparator with the given hysteresis width.
// The width is not validated; a non-positive width removes the dead band.
func NewSchmittTrigger(hysteresis float64) *SchmittTrigger {
	s := &SchmittTrigger{}
	s.SetHysteresis(hysteresis)
	return s
}

// Compare updates the latch from value and reference and returns it.
func (s *SchmittTrigger) Compare(value, reference float64) bool {
	if !s.state && value > reference+s.half {
		s.state = true
	} else if s.state && value < reference-s.half {
		s.state = false
	}

	return s.state
}

// State returns the latched output without updating it.
func (s *SchmittTrigger) State() bool { return s.state }

// Hysteresis returns the full dead band width.
func (s *SchmittTrigger) Hysteresis() float64 { return s.hysteresis }

// SetHysteresis changes the dead band width. The latch is kept.
func (s *SchmittTrigger) SetHysteresis(hysteresis float64) {
	s.hysteresis = hysteresis
	s.half = hysteresis / 2
}

// Reset releases the latch.
func (s *SchmittTrigger) Reset() { s.state = false }
