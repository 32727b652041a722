package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMissionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mission",
		Short: "Run the scripted demonstration sortie",
		Long: "Mission deploys a QuadCopter and an advanced fixed-wing unit and\n" +
			"narrates their shared, capability, and contract-level behaviors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(resolveConfigDir())
			if err != nil {
				return err
			}
			plan.Out = cmd.OutOrStdout()
			if err := plan.Run(); err != nil {
				return fmt.Errorf("run mission: %w", err)
			}
			return nil
		},
	}
}
