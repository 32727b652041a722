package drone

// QuadCopter is a rotary-wing unit carrying the VisualCapture capability.
type QuadCopter struct {
	Airframe
}

var (
	_ Drone         = (*QuadCopter)(nil)
	_ VisualCapture = (*QuadCopter)(nil)
)

// NewQuadCopter creates a QuadCopter with the given callsign.
// Returns ErrEmptyCallsign if the callsign is empty.
func NewQuadCopter(callsign string) (*QuadCopter, error) {
	af, err := NewAirframe(callsign)
	if err != nil {
		return nil, err
	}
	return &QuadCopter{Airframe: af}, nil
}

// Fly emits "<callsign> is hovering with four rotors."
func (q *QuadCopter) Fly() {
	q.emitf("%s is hovering with four rotors.\n", q.Callsign())
}

// TakePicture emits "<callsign> takes a picture with its <SensorType>".
func (q *QuadCopter) TakePicture() {
	q.emitf("%s takes a picture with its %s\n", q.Callsign(), SensorType)
}

// Record4KVideo uses the stock recording body unmodified.
func (q *QuadCopter) Record4KVideo() {
	DefaultRecord4KVideo(q.Output())
}
