package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/callie/launchpad/internal/display"
	"github.com/callie/launchpad/internal/project"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects by recency",
		Long: `List the projects under the configured root, most recently modified
first, one page at a time.

Examples:
  launchpad list
  launchpad list --page 2
  launchpad list --page-size 25`,
		Args: cobra.NoArgs,
		RunE: listCommand,
	}

	cmd.Flags().Int("page", 1, "Page number to show")
	cmd.Flags().Int("page-size", 0, "Projects per page (default from config)")

	return cmd
}

// listCommand implements the list command logic
func listCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize == 0 {
		pageSize = cfg.PageSize
	}

	engine := newEngine(cfg)
	view, err := engine.List(page, pageSize)
	if err != nil {
		if errors.Is(err, project.ErrRootNotConfigured) {
			return fmt.Errorf("no projects root configured; set projects_dir in the config file or pass --projects-dir")
		}
		return err
	}

	out := cmd.OutOrStdout()
	colorOutput := useColor(out)

	for _, row := range display.FormatProjectTable(view.Items, colorOutput) {
		fmt.Fprintln(out, row)
	}
	fmt.Fprintln(out, display.NavigationBar(view.CurrentPage, view.TotalPages, view.TotalItems, colorOutput))

	return nil
}
