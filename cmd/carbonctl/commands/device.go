package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Device returns the command showing recent metrics for one device.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
//	--limit, -l: Maximum number of records to show
func Device() *cobra.Command {
	var (
		configPath string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "device <device-id>",
		Short: "Show recent metrics for one device",
		Long: `Show the most recent metric records reported by a single device.

Examples:
  # Show the last 10 records for a device
  carbonctl device device_5613

  # Show the last 50 records
  carbonctl device device_5613 --limit 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.DeviceMetrics(cmd.Context(), configPath, args[0], limit)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of records to show")

	return cmd
}
