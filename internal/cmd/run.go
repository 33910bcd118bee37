package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/callie/launchpad/internal/config"
	"github.com/callie/launchpad/internal/display"
	"github.com/callie/launchpad/internal/history"
	"github.com/callie/launchpad/internal/launcher"
	"github.com/callie/launchpad/internal/project"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [query] [-- args...]",
		Short: "Resolve a project and launch it",
		Long: `Resolve a project against the configured root and launch its entry
point. The process exit code is proxied back as launchpad's own.

The query may be an exact name or a fuzzy term. With --latest (or with no
query at all) the most recently modified project is launched. Everything
after "--" is forwarded to the launched process untouched.

Examples:
  launchpad run myproject
  launchpad run algo              # fuzzy match
  launchpad run --latest
  launchpad run myproject -- --verbose --seed 42`,
		// At most one query before the dash; anything after it is forwarded.
		Args: func(cmd *cobra.Command, args []string) error {
			n := len(args)
			if at := cmd.ArgsLenAtDash(); at >= 0 {
				n = at
			}
			if n > 1 {
				return fmt.Errorf("accepts at most one query argument, received %d", n)
			}
			return nil
		},
		ValidArgsFunction: completeProjectNames,
		RunE:              runCommand,
	}

	cmd.Flags().Bool("latest", false, "Launch the most recently modified project")

	return cmd
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	latest, _ := cmd.Flags().GetBool("latest")

	// Split query from forwarded tokens. Cobra strips the "--" itself;
	// ArgsLenAtDash marks where the forwarded tokens begin.
	query := ""
	forwarded := []string{}
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		if at > 0 {
			query = args[0]
		}
		forwarded = args[at:]
	} else if len(args) > 0 {
		query = args[0]
	}

	if latest && query != "" {
		return fmt.Errorf("cannot combine --latest with a query")
	}

	engine := newEngine(cfg)
	record, err := resolveTarget(cmd, engine, query, latest)
	if err != nil {
		return err
	}

	launch := launcher.NewLauncher(cfg.Launch.Command)
	result, err := launch.Launch(cmd.Context(), record, forwarded)
	if err != nil {
		return err
	}

	recordLaunch(cmd, cfg, record, forwarded, result)

	if result.ExitCode != 0 {
		os.Exit(result.ExitCode)
	}
	return nil
}

// resolveTarget picks the project to launch: the recency head for latest/blank
// queries, otherwise the best fuzzy match. Remaining matches are shown as
// alternatives before committing to the top one.
func resolveTarget(cmd *cobra.Command, engine *project.Engine, query string, latest bool) (project.Record, error) {
	if latest || query == "" {
		record, err := engine.Latest()
		if err != nil {
			return project.Record{}, describeResolveError(err, query)
		}
		return record, nil
	}

	matches, err := engine.Resolve(query)
	if err != nil {
		return project.Record{}, describeResolveError(err, query)
	}

	if len(matches) > 1 {
		errOut := cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "Multiple matches for %q:\n", query)
		for _, row := range display.FormatMatches(matches, useColor(errOut)) {
			fmt.Fprintf(errOut, "  %s\n", row)
		}
	}

	return matches[0].Record, nil
}

// describeResolveError maps engine sentinels to user-facing messages.
func describeResolveError(err error, query string) error {
	switch {
	case errors.Is(err, project.ErrRootNotConfigured):
		return fmt.Errorf("no projects root configured; set projects_dir in the config file or pass --projects-dir")
	case errors.Is(err, project.ErrNoProjects):
		return fmt.Errorf("no projects found under the configured root")
	case errors.Is(err, project.ErrNoMatch):
		return fmt.Errorf("no project matched %q", query)
	default:
		return err
	}
}

// recordLaunch appends the launch to history when enabled. History failures
// are logged, never fatal: the project already ran.
func recordLaunch(cmd *cobra.Command, cfg *config.Config, record project.Record, forwarded []string, result *launcher.Result) {
	if !cfg.History.Enabled || cfg.History.DBPath == "" {
		return
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	launch := &history.Launch{
		ProjectName: record.Name,
		ProjectPath: record.Path,
		Args:        forwarded,
		ExitCode:    result.ExitCode,
		Duration:    result.Duration,
	}
	if err := store.RecordLaunch(context.Background(), launch); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to record launch: %v\n", err)
	}
}
