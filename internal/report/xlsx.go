// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/transcript-wam/pkg/types"
)

const (
	resultsSheet = "Results"
	summarySheet = "Summary"
)

// WriteXLSX writes transcripts to an XLSX workbook at path. The Results
// sheet lists every record with its source; the Summary sheet has one row
// per transcript with its credit total, WAM, and EIHWAM.
func WriteXLSX(path string, transcripts []types.Transcript) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is renamed rather than left empty.
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("xlsx rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("xlsx new sheet: %w", err)
	}

	header := append([]string{"Source"}, recordHeader...)
	if err := writeRow(f, resultsSheet, 1, toAny(header)); err != nil {
		return err
	}
	row := 2
	for _, t := range transcripts {
		for _, r := range t.Records {
			vals := []any{t.Source, r.Year, r.Session, r.UnitCode, r.UnitName, r.Mark, r.Grade, r.CreditPoints}
			if err := writeRow(f, resultsSheet, row, vals); err != nil {
				return err
			}
			row++
		}
	}

	if err := writeRow(f, summarySheet, 1, []any{"Source", "Credit Points", "WAM", "EIHWAM"}); err != nil {
		return err
	}
	for i, t := range transcripts {
		vals := []any{t.Source, t.TotalCredits(), cellMean(t.WAM), cellMean(t.EIHWAM)}
		if err := writeRow(f, summarySheet, i+2, vals); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(resultsSheet, "A", "A", 40) // source
	_ = f.SetColWidth(resultsSheet, "E", "E", 40) // unit name
	_ = f.SetColWidth(summarySheet, "A", "A", 40)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, vals []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
		return fmt.Errorf("xlsx row %d: %w", row, err)
	}
	return nil
}

// cellMean returns the numeric mean, or "n/a" when unavailable.
func cellMean(m types.Mean) any {
	if !m.Available {
		return "n/a"
	}
	return m.Value
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
