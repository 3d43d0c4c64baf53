package commands

import (
	"github.com/spf13/cobra"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/handlers"
)

// AgentEnv returns the command printing device agent environment exports.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect carbonctl.yaml)
func AgentEnv() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "agent-env",
		Short: "Print device agent environment exports",
		Long: `Print the environment variable exports a device agent needs to
report metrics into this platform.

The output is plain shell assignments, so it can be applied directly:

  eval "$(carbonctl agent-env)"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.AgentEnv(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: carbonctl.yaml)")

	return cmd
}
