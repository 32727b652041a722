package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-aero/sortie/pkg/drone"
	"github.com/mesh-aero/sortie/pkg/fleet"
)

func newFleetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fleet",
		Short: "Deploy the demo units and list the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(resolveConfigDir())
			if err != nil {
				return err
			}

			quad, err := drone.NewQuadCopter(plan.QuadCallsign)
			if err != nil {
				return fmt.Errorf("deploy quadcopter: %w", err)
			}
			wing, err := drone.NewFixedWingDrone(plan.FixedWingCallsign)
			if err != nil {
				return fmt.Errorf("deploy fixed-wing: %w", err)
			}

			roster := fleet.NewRoster()
			for _, d := range []drone.Drone{quad, wing} {
				if _, err := roster.Deploy(d); err != nil {
					return fmt.Errorf("deploy %s: %w", d.Callsign(), err)
				}
			}

			w := cmd.OutOrStdout()
			for _, u := range roster.List() {
				fmt.Fprintf(w, "%s  %s  [%s]\n", u.UnitID, u.Callsign, strings.Join(u.Capabilities, ", "))
			}
			return nil
		},
	}
}
