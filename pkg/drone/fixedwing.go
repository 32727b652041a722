package drone

// FixedWingDrone is a long-endurance unit carrying the full AdvancedRecon
// capability set.
type FixedWingDrone struct {
	Airframe
}

var (
	_ Drone         = (*FixedWingDrone)(nil)
	_ AdvancedRecon = (*FixedWingDrone)(nil)
)

// NewFixedWingDrone creates a FixedWingDrone with the given callsign.
// Returns ErrEmptyCallsign if the callsign is empty.
func NewFixedWingDrone(callsign string) (*FixedWingDrone, error) {
	af, err := NewAirframe(callsign)
	if err != nil {
		return nil, err
	}
	return &FixedWingDrone{Airframe: af}, nil
}

// Fly emits "<callsign> is cruising at high altitude."
func (f *FixedWingDrone) Fly() {
	f.emitf("%s is cruising at high altitude.\n", f.Callsign())
}

// TakePicture emits "<callsign> captures high-resolution satellite imagery."
func (f *FixedWingDrone) TakePicture() {
	f.emitf("%s captures high-resolution satellite imagery.\n", f.Callsign())
}

// InterceptSignal emits "<callsign> intercepts and analyzes radio frequencies."
func (f *FixedWingDrone) InterceptSignal() {
	f.emitf("%s intercepts and analyzes radio frequencies.\n", f.Callsign())
}

// Record4KVideo replaces the stock recording body with gimbal-stabilized
// recording. The line deliberately omits the callsign.
func (f *FixedWingDrone) Record4KVideo() {
	f.emitf("Engaging gimbal-stabilized 4K video recording.\n")
}
