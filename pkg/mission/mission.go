// Package mission runs the scripted demonstration sortie: a QuadCopter
// deployment followed by an advanced fixed-wing deployment, narrated as a
// fixed sequence of lines on the plan's writer.
package mission

import (
	"fmt"
	"io"
	"os"

	"github.com/mesh-aero/sortie/pkg/drone"
)

// Default callsigns for the demonstration sortie.
const (
	DefaultQuadCallsign      = "Bravo-1"
	DefaultFixedWingCallsign = "Phoenix-7"
)

// Plan describes one run of the demonstration sortie.
type Plan struct {
	// QuadCallsign is assigned to the QuadCopter unit.
	QuadCallsign string

	// FixedWingCallsign is assigned to the FixedWingDrone unit.
	FixedWingCallsign string

	// Out receives the narration. Defaults to os.Stdout in DefaultPlan.
	Out io.Writer
}

// DefaultPlan returns the stock demonstration plan writing to os.Stdout.
func DefaultPlan() Plan {
	return Plan{
		QuadCallsign:      DefaultQuadCallsign,
		FixedWingCallsign: DefaultFixedWingCallsign,
		Out:               os.Stdout,
	}
}

// Run executes the sortie. It constructs both units, then invokes their
// shared, capability, and contract-level behaviors in the fixed order.
// Returns an error only when a unit cannot be constructed.
func (p Plan) Run() error {
	w := p.Out
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w, "--- Deploying QuadCopter Unit ---")
	quad, err := drone.NewQuadCopter(p.QuadCallsign)
	if err != nil {
		return fmt.Errorf("deploy quadcopter: %w", err)
	}
	quad.SetOutput(w)

	quad.TakeOff()
	quad.Fly()

	fmt.Fprintln(w, "\n--- Engaging Recon Capabilities ---")
	quad.TakePicture()
	quad.Record4KVideo()
	fmt.Fprintln(w, "Standard Lens Type: "+drone.StandardLensType())
	quad.Land()

	fmt.Fprintln(w, "\n\n--- Deploying Advanced Fixed-Wing Unit ---")
	wing, err := drone.NewFixedWingDrone(p.FixedWingCallsign)
	if err != nil {
		return fmt.Errorf("deploy fixed-wing: %w", err)
	}
	wing.SetOutput(w)

	wing.TakeOff()
	wing.Fly()
	wing.TakePicture()
	wing.InterceptSignal()
	wing.Record4KVideo()
	wing.Land()

	return nil
}
