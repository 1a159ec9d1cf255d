// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-wam/internal/history"
	"github.com/pdiddy/transcript-wam/internal/report"
	"github.com/pdiddy/transcript-wam/internal/transcript"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [transcripts...]",
	Short: "Write rows and means to an XLSX workbook",
	Long: `Export processes the given transcripts, or loads saved results with
--id, and writes an XLSX workbook with a Results sheet (one row per unit)
and a Summary sheet (credit total, WAM, and EIHWAM per transcript).`,
	RunE: runExport,
}

func init() {
	addDocumentFlags(exportCmd.Flags())
	exportCmd.Flags().StringP("out", "o", "results.xlsx", "output workbook path")
	exportCmd.Flags().StringSlice("id", nil, "saved transcript IDs to export instead of files")
	exportCmd.Flags().String("data-dir", "", "directory holding history.db")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ids, _ := cmd.Flags().GetStringSlice("id")
	if len(args) == 0 && len(ids) == 0 {
		return fmt.Errorf("provide one or more transcripts or --id values")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	var transcripts []types.Transcript
	var failed int

	if len(args) > 0 {
		proc, err := newProcessor(cfg)
		if err != nil {
			return err
		}
		ts, result, err := transcript.ProcessBatch(ctx, proc, args, os.Stderr)
		if err != nil {
			return err
		}
		transcripts = append(transcripts, ts...)
		failed = result.Failed
	}

	if len(ids) > 0 {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		for _, id := range ids {
			t, err := store.Get(ctx, id)
			if err != nil {
				return err
			}
			transcripts = append(transcripts, t)
		}
	}

	out, _ := cmd.Flags().GetString("out")
	if err := report.WriteXLSX(out, transcripts); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d transcript(s))\n", out, len(transcripts))

	if failed > 0 {
		return fmt.Errorf("%d transcript(s) failed", failed)
	}
	return nil
}
