// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the carbonctl CLI.
//
// The root command serves as the entry point and parent for all subcommands.
// It provides basic CLI metadata and organizes the command hierarchy.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carbonctl",
		Short: "Inspect and operate a carbon profiling platform on Kubernetes",
	}

	// Core commands
	cmd.AddCommand(Status())
	cmd.AddCommand(Health())
	cmd.AddCommand(Devices())
	cmd.AddCommand(Device())
	cmd.AddCommand(Logs())

	// Operational commands
	cmd.AddCommand(Reset())
	cmd.AddCommand(AgentEnv())
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
