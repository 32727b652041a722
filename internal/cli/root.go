// Package cli implements the sortie command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
}

var flags rootFlags

// NewRootCmd creates the top-level "sortie" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sortie",
		Short: "A capability-composition demo for recon drone units",
		Long: "Sortie models recon drone units as an airframe base plus capability\n" +
			"contracts, and narrates a scripted demonstration mission.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .sortie)")

	root.AddCommand(newMissionCmd())
	root.AddCommand(newFleetCmd())
	root.AddCommand(newLensCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("SORTIE_CONFIG_DIR"); v != "" {
		return v
	}
	return ".sortie"
}
