// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package section locates the unit results section inside transcript page
// text. The section starts after the first line containing "Year" and ends
// before the next line containing "Credit points gained".
package section

import "strings"

const (
	// StartMarker opens the results section. The marker line itself is
	// not part of the section.
	StartMarker = "Year"
	// EndMarker closes the results section.
	EndMarker = "Credit points gained"
)

// Extract scans pages in order as one continuous stream of lines and
// returns the lines strictly between the first start marker and the next
// end marker. The scan stops at the end marker; later start markers are
// ignored. Without an end marker the section runs to the end of the last
// page. Extract never fails: no start marker means an empty result.
func Extract(pages []string) []string {
	var out []string
	inside := false
	for _, page := range pages {
		for _, line := range Lines(page) {
			if !inside {
				if strings.Contains(line, StartMarker) {
					inside = true
				}
				continue
			}
			if strings.Contains(line, EndMarker) {
				return out
			}
			out = append(out, line)
		}
	}
	return out
}

// ExtractPerPage applies the section scan to each page independently: the
// inside state resets at every page boundary and an end marker only ends
// the current page.
func ExtractPerPage(pages []string) []string {
	var out []string
	for _, page := range pages {
		out = append(out, Extract([]string{page})...)
	}
	return out
}

// Lines splits page text on line breaks. A trailing carriage return is
// dropped from each line. An empty page yields no lines.
func Lines(page string) []string {
	if page == "" {
		return nil
	}
	lines := strings.Split(page, "\n")
	for i, l := range lines {
		// CRLF text must yield the same lines as LF text.
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
