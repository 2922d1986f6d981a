package detect

// ZeroCross produces a pulse state that flips at each zero crossing of its
// input. A hysteresis band around zero suppresses chatter from noise.
type ZeroCross struct {
	cmp    SchmittTrigger
	policy RetunePolicy
}

// ZeroCrossOption configures a ZeroCross.
type ZeroCrossOption func(*ZeroCross)

// WithZeroCrossRetunePolicy selects whether SetHysteresis releases the
// latch. Unknown policies are ignored.
func WithZeroCrossRetunePolicy(p RetunePolicy) ZeroCrossOption {
	return func(z *ZeroCross) {
		if validRetunePolicy(p) {
			z.policy = p
		}
	}
}

// NewZeroCross creates a zero-crossing detector with the given hysteresis
// width.
func NewZeroCross(hysteresis float64, opts ...ZeroCrossOption) *ZeroCross {
	z := &ZeroCross{}
	z.cmp.SetHysteresis(hysteresis)

	for _, opt := range opts {
		if opt != nil {
			opt(z)
		}
	}

	return z
}

// ProcessSample compares x against zero and returns the latched state.
func (z *ZeroCross) ProcessSample(x float64) bool {
	return z.cmp.Compare(x, 0)
}

// State returns the latched state without advancing.
func (z *ZeroCross) State() bool { return z.cmp.State() }

// Hysteresis returns the dead band width.
func (z *ZeroCross) Hysteresis() float64 { return z.cmp.Hysteresis() }

// RetunePolicy returns the configured retune policy.
func (z *ZeroCross) RetunePolicy() RetunePolicy { return z.policy }

// SetHysteresis changes the dead band width.
func (z *ZeroCross) SetHysteresis(hysteresis float64) {
	z.cmp.SetHysteresis(hysteresis)
	if z.policy == RetuneResetState {
		z.Reset()
	}
}

// Reset releases the latch.
func (z *ZeroCross) Reset() { z.cmp.Reset() }
