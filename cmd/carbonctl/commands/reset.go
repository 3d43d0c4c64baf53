package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Reset returns the command clearing all stored metrics.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
//	--yes, -y: Skip the confirmation prompt
func Reset() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored metrics",
		Long: `Delete every metric record stored by the ingestion API.

This is destructive and cannot be undone. Devices keep reporting and
will repopulate the store. Requires --yes in non-interactive sessions.

Examples:
  # Reset with an interactive confirmation
  carbonctl reset

  # Reset without prompting
  carbonctl reset --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Reset(cmd.Context(), configPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
