// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/transcript-wam/internal/record"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	meanStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	naStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

var recordHeader = []string{"Year", "Session", "Unit Code", "Unit Name", "Mark", "Grade", "Credit Points"}

// WriteTable prints the records of t as a table followed by the WAM and
// EIHWAM lines.
func WriteTable(w io.Writer, t types.Transcript) {
	fmt.Fprintln(w, titleStyle.Render(t.Source))

	WriteRecords(w, t.Records)

	fmt.Fprintf(w, "Credit points: %d\n", t.TotalCredits())
	fmt.Fprintf(w, "WAM:    %s\n", renderMean(t.WAM))
	fmt.Fprintf(w, "EIHWAM: %s\n", renderMean(t.EIHWAM))
}

// WriteRecords prints records as a table.
func WriteRecords(w io.Writer, records []types.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, noteStyle.Render("No unit results found."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(recordHeader)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, r := range records {
		table.Append([]string{
			r.Year,
			r.Session,
			r.UnitCode,
			r.UnitName,
			strconv.FormatFloat(r.Mark, 'f', -1, 64),
			r.Grade,
			strconv.Itoa(r.CreditPoints),
		})
	}
	table.Render()
}

// WriteSkipped prints the section lines that were not accepted as rows,
// with the reason for each.
func WriteSkipped(w io.Writer, skipped []record.Skipped) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintln(w, noteStyle.Render(fmt.Sprintf("Skipped %d line(s):", len(skipped))))
	for _, s := range skipped {
		fmt.Fprintf(w, "  %-18s %q\n", s.Reason, s.Line)
	}
}

func renderMean(m types.Mean) string {
	if !m.Available {
		return naStyle.Render(fmt.Sprintf("n/a (%s)", m.Reason))
	}
	return meanStyle.Render(FormatMean(m))
}
