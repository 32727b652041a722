package drone

// SignalIntel is the signals-intelligence capability contract. It carries a
// single obligation and no defaults or constants.
type SignalIntel interface {
	// InterceptSignal emits a unit-specific interception description.
	InterceptSignal()
}
