// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders processed transcripts for people and for other
// tools: an aligned table, YAML, JSON, or an XLSX workbook.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-wam/pkg/types"
)

// FormatMean renders a mean with one fractional digit, or "n/a" when it is
// unavailable.
func FormatMean(m types.Mean) string {
	if !m.Available {
		return "n/a"
	}
	return strconv.FormatFloat(m.Value, 'f', 1, 64)
}

// Write renders transcripts to w in the given format.
func Write(w io.Writer, format types.OutputFormat, transcripts []types.Transcript) error {
	switch format {
	case types.OutputTable, "":
		for i, t := range transcripts {
			if i > 0 {
				fmt.Fprintln(w)
			}
			WriteTable(w, t)
		}
		return nil
	case types.OutputYAML:
		return WriteYAML(w, transcripts)
	case types.OutputJSON:
		return WriteJSON(w, transcripts)
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml, or json)", format)
	}
}

// WriteYAML writes transcripts as a YAML sequence.
func WriteYAML(w io.Writer, transcripts []types.Transcript) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(transcripts); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// WriteJSON writes transcripts as an indented JSON array.
func WriteJSON(w io.Writer, transcripts []types.Transcript) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(transcripts); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}
