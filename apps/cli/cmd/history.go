package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/waypost-dev/waypost/packages/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently dispatched requests",
	Long: `Show the request log recorded in the configured history database,
newest first.

Examples:
  waypost history
  waypost history --limit 100`,
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of records to show")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	setupLogger()

	cfg, _, err := loadSetup()
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		return fmt.Errorf("no historyDB configured")
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no requests recorded")
		return nil
	}

	for _, rec := range records {
		when := humanize.Time(rec.CreatedAt)
		if rec.Error != "" {
			errorColor.Fprintf(cmd.OutOrStdout(), "ERR")
			fmt.Fprintf(cmd.OutOrStdout(), "  %-7s %s  %s (%s)\n", rec.Method, rec.URL, rec.Error, when)
			continue
		}

		statusColor(rec.Status).Fprintf(cmd.OutOrStdout(), "%d", rec.Status)
		fmt.Fprintf(cmd.OutOrStdout(), "  %-7s %s  %s (%s)\n", rec.Method, rec.URL, rec.Duration, when)
	}

	return nil
}
