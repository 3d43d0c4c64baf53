package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Health returns the command for probing the ingestion API's health.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
func Health() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the ingestion API health endpoint",
		Long: `Probe the ingestion API's /health endpoint and print the response.

Examples:
  # Probe the platform's ingestion API
  carbonctl health`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Health(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")

	return cmd
}
