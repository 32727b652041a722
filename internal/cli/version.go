package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-aero/sortie/pkg/sortie"
)

const modulePath = "github.com/mesh-aero/sortie"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sortie version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "sortie v%s\nmodule: %s\n", sortie.Version, modulePath)
			return nil
		},
	}
}
