package detect

// RetunePolicy selects what happens to detector state when a parameter is
// changed at run time.
//
// Values other than RetuneKeepState and RetuneResetState are invalid.
// WithOnsetRetunePolicy reports them as an error from NewOnset.
// WithZeroCrossRetunePolicy ignores them and the previously selected
// policy stays in effect, since NewZeroCross has no error return.
type RetunePolicy int

const (
	// RetuneKeepState keeps envelopes, filters and latches running through
	// a retune.
	RetuneKeepState RetunePolicy = iota
	// RetuneResetState flushes all detector state on every retune.
	RetuneResetState
)

func (p RetunePolicy) String() string {
	switch p {
	case RetuneKeepState:
		return "keep"
	case RetuneResetState:
		return "reset"
	default:
		return "unknown"
	}
}

func validRetunePolicy(p RetunePolicy) bool {
	return p == RetuneKeepState || p == RetuneResetState
}
