// Package main is the entry point for the carbonctl CLI.
//
// carbonctl is a command-line tool for inspecting and operating a carbon
// profiling platform running on Kubernetes. It resolves the platform's
// services, reports ingestion health and record counts, tails logs, and
// prints the environment a device agent needs to start reporting.
//
// Commands: status, health, devices, device, logs, reset, agent-env, init.
//
// For detailed usage information, run:
//
//	carbonctl --help
package main

import (
	"fmt"
	"os"

	"github.com/carbonprofiling/carbonctl/cmd/carbonctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
