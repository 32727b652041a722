package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-aero/sortie/pkg/drone"
)

func newLensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lens",
		Short: "Print the standard lens type",
		Long:  "Lens prints the contract-level standard lens designation. No unit\ninstances are constructed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Standard Lens Type: %s\n", drone.StandardLensType())
			return nil
		},
	}
}
