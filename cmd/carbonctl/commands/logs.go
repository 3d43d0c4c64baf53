package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Logs returns the command tailing the ingestion deployment's logs.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
//	--tail, -t: Number of log lines to show
func Logs() *cobra.Command {
	var (
		configPath string
		tail       int64
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent ingestion API logs",
		Long: `Show the tail of the ingestion API deployment's logs.

Examples:
  # Show recent logs
  carbonctl logs

  # Show the last 100 lines
  carbonctl logs --tail 100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Logs(cmd.Context(), configPath, tail)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")
	cmd.Flags().Int64VarP(&tail, "tail", "t", 0, "Number of log lines to show")

	return cmd
}
