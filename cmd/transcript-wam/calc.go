// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-wam/internal/document"
	"github.com/pdiddy/transcript-wam/internal/history"
	"github.com/pdiddy/transcript-wam/internal/report"
	"github.com/pdiddy/transcript-wam/internal/transcript"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

var calcCmd = &cobra.Command{
	Use:   "calc [transcripts...]",
	Short: "Compute WAM and EIHWAM for one or more transcripts",
	Long: `Calc reads each transcript, extracts the unit results between the
"Year" header and the "Credit points gained" line, and prints the rows
with the WAM and EIHWAM. A mean whose denominator is zero is shown as n/a.

A transcript that cannot be read or contains a malformed row is reported
as failed and produces no results; the remaining transcripts still run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	addDocumentFlags(calcCmd.Flags())
	calcCmd.Flags().String("format", "", "output format: table, yaml, or json (default table)")
	calcCmd.Flags().Bool("save", false, "save results to the history database")
	calcCmd.Flags().String("data-dir", "", "directory holding history.db")

	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	proc, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	// Status lines go to stderr when stdout carries machine-readable output.
	var status io.Writer = os.Stdout
	if cfg.Report.Format != types.OutputTable && cfg.Report.Format != "" {
		status = os.Stderr
	}

	ctx := commandContext(cmd)

	transcripts, result, err := transcript.ProcessBatch(ctx, proc, args, status)
	if err != nil {
		return err
	}
	if len(transcripts) > 0 {
		if cfg.Report.Format == types.OutputTable || cfg.Report.Format == "" {
			fmt.Fprintln(os.Stdout)
		}
		if err := report.Write(os.Stdout, cfg.Report.Format, transcripts); err != nil {
			return err
		}
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveAll(ctx, cfg.History, transcripts, status); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d transcript(s) failed", result.Failed)
	}
	return nil
}

// newProcessor builds the pipeline for cfg.
func newProcessor(cfg types.Config) (*transcript.Processor, error) {
	src, err := document.New(cfg.Document)
	if err != nil {
		return nil, err
	}
	return transcript.NewProcessor(src, cfg.Section, logger), nil
}

func saveAll(ctx context.Context, cfg types.HistoryConfig, transcripts []types.Transcript, w io.Writer) error {
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, t := range transcripts {
		if err := store.Save(ctx, t); err != nil {
			return fmt.Errorf("saving %s: %w", t.Source, err)
		}
		fmt.Fprintf(w, "saved:     %s as %s\n", t.Source, t.ID)
	}
	return nil
}
