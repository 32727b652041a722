package mission

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-aero/sortie/pkg/drone"
)

// wantScenario is the full narration of the stock demonstration sortie,
// including the blank lines that group the two deployments.
var wantScenario = strings.Join([]string{
	"--- Deploying QuadCopter Unit ---",
	"Bravo-1 is taking off.",
	"Bravo-1 is hovering with four rotors.",
	"",
	"--- Engaging Recon Capabilities ---",
	"Bravo-1 takes a picture with its High-Resolution Optical Camera",
	"Recording 4K video using default settings.",
	"Standard Lens Type: 50mm Standard Lens",
	"Bravo-1 is landing.",
	"",
	"",
	"--- Deploying Advanced Fixed-Wing Unit ---",
	"Phoenix-7 is taking off.",
	"Phoenix-7 is cruising at high altitude.",
	"Phoenix-7 captures high-resolution satellite imagery.",
	"Phoenix-7 intercepts and analyzes radio frequencies.",
	"Engaging gimbal-stabilized 4K video recording.",
	"Phoenix-7 is landing.",
	"",
}, "\n")

func TestPlanRunStockScenario(t *testing.T) {
	var buf bytes.Buffer
	p := DefaultPlan()
	p.Out = &buf

	err := p.Run()
	assert.NoError(t, err)
	assert.Equal(t, wantScenario, buf.String())
}

func TestPlanRunCustomCallsigns(t *testing.T) {
	var buf bytes.Buffer
	p := Plan{QuadCallsign: "Kilo-2", FixedWingCallsign: "Raven-9", Out: &buf}

	if err := p.Run(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	out := buf.String()
	assert.Contains(t, out, "Kilo-2 is taking off.\n")
	assert.Contains(t, out, "Raven-9 is cruising at high altitude.\n")
	assert.NotContains(t, out, "Bravo-1")
}

func TestPlanRunEmptyCallsign(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
	}{
		{
			name: "empty quad callsign",
			plan: Plan{FixedWingCallsign: "Phoenix-7"},
		},
		{
			name: "empty fixed-wing callsign",
			plan: Plan{QuadCallsign: "Bravo-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.plan.Out = &buf
			err := tt.plan.Run()
			if !errors.Is(err, drone.ErrEmptyCallsign) {
				t.Fatalf("expected ErrEmptyCallsign, got %v", err)
			}
		})
	}
}

func TestDefaultPlan(t *testing.T) {
	p := DefaultPlan()
	assert.Equal(t, DefaultQuadCallsign, p.QuadCallsign)
	assert.Equal(t, DefaultFixedWingCallsign, p.FixedWingCallsign)
	assert.NotNil(t, p.Out)
}
