// Package fleet tracks deployed units in an in-memory roster. Each deployed
// unit gets a generated ID and a recorded capability set, derived from the
// contracts its type satisfies.
package fleet

import (
	"errors"

	"github.com/google/uuid"

	"github.com/mesh-aero/sortie/pkg/drone"
)

// Capability names recorded on roster entries.
const (
	CapabilityVisualCapture = "visual-capture"
	CapabilitySignalIntel   = "signal-intel"
	CapabilityAdvancedRecon = "advanced-recon"
)

// Roster errors.
var (
	ErrUnitNotFound = errors.New("unit not found")
	ErrNilUnit      = errors.New("unit must not be nil")
)

// Unit is a roster entry for a deployed drone.
type Unit struct {
	UnitID       string   // UUID, generated on deploy.
	Callsign     string   // The unit's callsign.
	Capabilities []string // Capability names, in declaration order.
}

// Roster is an in-memory registry of deployed units. Entries are listed in
// deployment order. A Roster is not safe for concurrent use.
type Roster struct {
	units map[string]Unit
	order []string
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{units: make(map[string]Unit)}
}

// Deploy registers d and returns its roster entry. The entry's capability
// set reflects the contracts d's type satisfies. Returns ErrNilUnit if d
// is nil.
func (r *Roster) Deploy(d drone.Drone) (Unit, error) {
	if d == nil {
		return Unit{}, ErrNilUnit
	}

	u := Unit{
		UnitID:       uuid.NewString(),
		Callsign:     d.Callsign(),
		Capabilities: capabilitiesOf(d),
	}
	r.units[u.UnitID] = u
	r.order = append(r.order, u.UnitID)
	return u, nil
}

// Get returns the roster entry for the given unit ID.
// Returns ErrUnitNotFound if the ID is not on the roster.
func (r *Roster) Get(unitID string) (Unit, error) {
	u, ok := r.units[unitID]
	if !ok {
		return Unit{}, ErrUnitNotFound
	}
	return u, nil
}

// List returns all roster entries in deployment order.
func (r *Roster) List() []Unit {
	out := make([]Unit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.units[id])
	}
	return out
}

// capabilitiesOf reports which capability contracts d satisfies.
// advanced-recon implies both constituent capabilities, and all three
// names are recorded when it holds.
func capabilitiesOf(d drone.Drone) []string {
	var caps []string
	if _, ok := d.(drone.VisualCapture); ok {
		caps = append(caps, CapabilityVisualCapture)
	}
	if _, ok := d.(drone.SignalIntel); ok {
		caps = append(caps, CapabilitySignalIntel)
	}
	if _, ok := d.(drone.AdvancedRecon); ok {
		caps = append(caps, CapabilityAdvancedRecon)
	}
	return caps
}
