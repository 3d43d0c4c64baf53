package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// Status returns the command for the full platform status report.
//
// This command resolves the ingestion API, probes its health and stats,
// shows ingested record counts and the carbon summary, and lists the
// platform's pods and recent logs.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
//	--namespace, -n: Kubernetes namespace override
//	--tail, -t: Number of log lines to show
//	--watch, -w: Continuously watch status updates
//	--json: Output in JSON format
func Status() *cobra.Command {
	var (
		configPath string
		namespace  string
		tail       int64
		watch      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the full platform status report",
		Long: `Show the full status report for the carbon profiling platform.

The report covers:
  - Ingestion API endpoint resolution and health
  - Ingestion statistics and total ingested records
  - Carbon summary (when records exist)
  - Platform pods and recent ingestion logs
  - Dashboard endpoint and device agent setup

When no records have been ingested yet, the report prints setup
instructions for pointing a device agent at the platform instead of
the carbon summary.

Examples:
  # Show the status report
  carbonctl status

  # Watch the platform continuously
  carbonctl status --watch

  # Get the report in JSON format
  carbonctl status --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), configPath, namespace, tail, watch, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Kubernetes namespace of the platform")
	cmd.Flags().Int64VarP(&tail, "tail", "t", 0, "Number of log lines to show")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Continuously watch status updates")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
