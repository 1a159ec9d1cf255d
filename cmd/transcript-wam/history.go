// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-wam/internal/history"
	"github.com/pdiddy/transcript-wam/internal/report"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and show saved results",
	Long: `History reads results saved with "calc --save" from the local
SQLite database in the data directory.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved transcripts, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, _, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(commandContext(cmd), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No saved results.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %5s  %4s  %6s  %6s  %s\n",
		"ID", "Processed", "Units", "CP", "WAM", "EIHWAM", "Source")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %5d  %4d  %6s  %6s  %s\n",
			e.ID, e.ProcessedAt.Format("2006-01-02 15:04:05"), e.Records, e.CreditPoints,
			report.FormatMean(e.WAM), report.FormatMean(e.EIHWAM), e.Source)
	}
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the rows and means of a saved transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, cfg, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := store.Get(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	return report.Write(cmd.OutOrStdout(), cfg.Report.Format, []types.Transcript{t})
}

// openHistory loads the config and opens the store it names.
func openHistory(cmd *cobra.Command) (*history.Store, types.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	store, err := history.NewStore(cfg.History)
	return store, cfg, err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	historyCmd.PersistentFlags().String("data-dir", "", "directory holding history.db")

	historyListCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyShowCmd.Flags().String("format", "", "output format: table, yaml, or json (default table)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	rootCmd.AddCommand(historyCmd)
}
