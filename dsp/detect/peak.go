package detect

// Peak produces a pulse state that is high near the peaks of a waveform.
//
// The raw signal is compared against the caller's envelope scaled by the
// sensitivity. A sensitivity below 1 droops the reference under the true
// envelope, so the signal crosses it close to each peak. The caller owns
// and updates the envelope.
type Peak struct {
	sensitivity float64
	cmp         SchmittTrigger
}

// NewPeak creates a peak detector. Neither argument is validated.
func NewPeak(sensitivity, hysteresis float64) *Peak {
	p := &Peak{sensitivity: sensitivity}
	p.cmp.SetHysteresis(hysteresis)
	return p
}

// ProcessSample compares x against env*sensitivity and returns the
// latched state.
func (p *Peak) ProcessSample(x, env float64) bool {
	return p.cmp.Compare(x, env*p.sensitivity)
}

// State returns the latched state without advancing.
func (p *Peak) State() bool { return p.cmp.State() }

// Sensitivity returns the envelope attenuation factor.
func (p *Peak) Sensitivity() float64 { return p.sensitivity }

// Hysteresis returns the comparator dead band width.
func (p *Peak) Hysteresis() float64 { return p.cmp.Hysteresis() }

// Reset releases the latch.
func (p *Peak) Reset() { p.cmp.Reset() }
