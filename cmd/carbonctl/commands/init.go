package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Init returns the command for interactively creating a configuration file.
//
// This command guides users through creating a carbonctl configuration
// using an interactive wizard.
//
// Flags:
//
//	--output, -o: Path to output file (default "carbonctl.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a carbonctl configuration file.

This command asks about:

  - The Kubernetes namespace the platform runs in
  - The ingestion API and dashboard service names
  - The deployment whose logs the status report shows
  - How many log lines to tail

The defaults match a stock platform install.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "carbonctl.yaml", "Output file path")

	return cmd
}
