package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/callie/launchpad/internal/config"
	"github.com/callie/launchpad/internal/history"
)

// NewHistoryCommand creates the history command with its subcommands
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect launch history",
		Long: `Inspect the record of past launches.

Without a subcommand, shows the most recent launches. History is usage
metadata only; it never influences how projects are discovered or resolved.`,
		RunE: historyShowCommand,
	}

	cmd.Flags().Int("limit", 20, "Maximum number of launches to show")

	cmd.AddCommand(newHistoryExportCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

func newHistoryExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export launch history to a JSON file",
		Args:  cobra.NoArgs,
		RunE:  historyExportCommand,
	}

	cmd.Flags().String("output", "launchpad-history.json", "Output file path")

	return cmd
}

func newHistoryClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded launches",
		Args:  cobra.NoArgs,
		RunE:  historyClearCommand,
	}
}

// openStore loads config and opens the history store.
func openStore(cmd *cobra.Command) (*history.Store, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if cfg.History.DBPath == "" {
		return nil, nil, fmt.Errorf("no history database configured")
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}
	return store, cfg, nil
}

// historyShowCommand lists recent launches
func historyShowCommand(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	launches, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(launches) == 0 {
		fmt.Fprintln(out, "No launches recorded")
		return nil
	}

	for _, l := range launches {
		status := "ok"
		if l.ExitCode != 0 {
			status = fmt.Sprintf("exit %d", l.ExitCode)
		}
		fmt.Fprintf(out, "%s  %-20s  %-8s  %s\n",
			l.StartedAt.Format("2006-01-02 15:04"),
			l.ProjectName,
			status,
			l.Duration.Round(time.Millisecond))
	}

	return nil
}

// historyExportCommand writes the full history to a JSON file
func historyExportCommand(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	output, _ := cmd.Flags().GetString("output")
	count, err := store.Export(cmd.Context(), output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d launch(es) to %s\n", count, output)
	return nil
}

// historyClearCommand deletes all recorded launches
func historyClearCommand(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Clear(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d launch(es)\n", deleted)
	return nil
}
