package drone

// AdvancedRecon is the union of VisualCapture and SignalIntel. It adds no
// members of its own; satisfying it means satisfying both constituent
// contracts.
type AdvancedRecon interface {
	VisualCapture
	SignalIntel
}
