// Package cmd wires the launchpad CLI commands to the resolution engine.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for launchpad
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launchpad",
		Short: "Resolve and launch projects from a directory",
		Long: `Launchpad keeps a directory of projects at your fingertips.

It lists projects by recency, resolves a name, a fuzzy term, or "latest"
against the directory, and launches the resolved project's entry point,
forwarding any trailing arguments and proxying the exit code.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: $LAUNCHPAD_HOME/config.yaml)")
	cmd.PersistentFlags().String("projects-dir", "", "Projects root directory (overrides config)")

	// Add subcommands
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
