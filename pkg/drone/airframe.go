package drone

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyCallsign is returned by unit constructors when the callsign is
// empty. A unit without a callsign cannot narrate itself.
var ErrEmptyCallsign = errors.New("callsign must not be empty")

// Drone is the behavior every unit type supplies. TakeOff, Land, and
// Callsign come from the embedded Airframe; Fly has no shared body and
// each unit type defines its own.
type Drone interface {
	// TakeOff emits "<callsign> is taking off."
	TakeOff()

	// Fly emits a unit-specific flight description.
	Fly()

	// Land emits "<callsign> is landing."
	Land()

	// Callsign returns the unit's callsign.
	Callsign() string
}

// Airframe is the base shared by all unit types. It holds the callsign,
// which is set once at construction and never changes, and the output
// writer the unit narrates to.
type Airframe struct {
	callsign string
	out      io.Writer
}

// NewAirframe creates an Airframe with the given callsign, writing to
// os.Stdout. Returns ErrEmptyCallsign if the callsign is empty.
func NewAirframe(callsign string) (Airframe, error) {
	if callsign == "" {
		return Airframe{}, ErrEmptyCallsign
	}
	return Airframe{callsign: callsign, out: os.Stdout}, nil
}

// TakeOff emits the shared take-off line. All units take off the same way.
func (a *Airframe) TakeOff() {
	a.emitf("%s is taking off.\n", a.callsign)
}

// Land emits the shared landing line. All units land the same way.
func (a *Airframe) Land() {
	a.emitf("%s is landing.\n", a.callsign)
}

// Callsign returns the callsign set at construction.
func (a *Airframe) Callsign() string {
	return a.callsign
}

// SetOutput redirects the unit's narration to w. Used by callers that
// capture output; units write to os.Stdout by default.
func (a *Airframe) SetOutput(w io.Writer) {
	a.out = w
}

// Output returns the writer the unit narrates to.
func (a *Airframe) Output() io.Writer {
	return a.out
}

// emitf writes one formatted narration line to the unit's writer.
func (a *Airframe) emitf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
