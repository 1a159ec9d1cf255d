// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-wam/internal/report"
)

var rowsCmd = &cobra.Command{
	Use:   "rows <transcript>",
	Short: "List the unit result rows recovered from a transcript",
	Long: `Rows prints the rows recovered from the results section of a
transcript without computing any means. Use --skipped to also list the
section lines that were not recognised as rows, with the reason.`,
	Args: cobra.ExactArgs(1),
	RunE: runRows,
}

func init() {
	addDocumentFlags(rowsCmd.Flags())
	rowsCmd.Flags().Bool("skipped", false, "also list lines that were skipped")

	rootCmd.AddCommand(rowsCmd)
}

func runRows(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	proc, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	recs, skipped, err := proc.Rows(ctx, args[0])
	if err != nil {
		return err
	}

	report.WriteRecords(os.Stdout, recs)
	if show, _ := cmd.Flags().GetBool("skipped"); show {
		report.WriteSkipped(os.Stdout, skipped)
	}
	return nil
}
