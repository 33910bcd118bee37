package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/callie/launchpad/internal/display"
	"github.com/callie/launchpad/internal/readme"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <query>",
		Short: "Show details for a resolved project",
		Long: `Resolve a project and print its details, including a description
extracted from its README when one exists.

Examples:
  launchpad show myproject
  launchpad show algo`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectNames,
		RunE:              showCommand,
	}
}

// showCommand implements the show command logic
func showCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	engine := newEngine(cfg)
	matches, err := engine.Resolve(args[0])
	if err != nil {
		return describeResolveError(err, args[0])
	}

	record := matches[0].Record
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Name:     %s\n", record.Name)
	fmt.Fprintf(out, "Path:     %s\n", record.Path)
	fmt.Fprintf(out, "Modified: %s\n", record.ModifiedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Score:    %.2f\n", matches[0].Score)

	if summary := readme.Load(record.Path); summary.Title != "" || summary.Description != "" {
		fmt.Fprintln(out)
		if summary.Title != "" {
			fmt.Fprintf(out, "%s\n", summary.Title)
		}
		if summary.Description != "" {
			fmt.Fprintf(out, "%s\n", summary.Description)
		}
	}

	if len(matches) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Other matches:")
		for _, row := range display.FormatMatches(matches[1:], useColor(out)) {
			fmt.Fprintf(out, "  %s\n", row)
		}
	}

	return nil
}
