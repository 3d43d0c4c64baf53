package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Devices returns the command listing every device reporting metrics.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
func Devices() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List devices reporting into the platform",
		Long: `List every device currently reporting power metrics, with record
counts, latest power draw, and last-seen timestamps.

Examples:
  # List reporting devices
  carbonctl devices`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Devices(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")

	return cmd
}
