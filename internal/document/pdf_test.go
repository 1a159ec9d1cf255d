// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/transcript-wam/internal/document"
	"github.com/pdiddy/transcript-wam/internal/transcript"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

// writePDF writes a minimal PDF with one page per entry of pages. Each line
// is shown with its own Tj after a 0 -14 Td line move. A nil entry is a
// page without a content stream.
func writePDF(t *testing.T, pages [][]string) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := map[int]int{}
	write := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	escape := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	next := 4
	var kids []string
	for _, lines := range pages {
		pageNum := next
		next++
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))

		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >>"
		if lines != nil {
			var s strings.Builder
			s.WriteString("BT /F1 10 Tf 72 720 Td")
			for i, l := range lines {
				if i > 0 {
					s.WriteString(" 0 -14 Td")
				}
				fmt.Fprintf(&s, " (%s) Tj", escape.Replace(l))
			}
			s.WriteString(" ET")

			contentNum := next
			next++
			page += fmt.Sprintf(" /Contents %d 0 R", contentNum)
			write(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", s.Len(), s.String()))
		}
		write(pageNum, page+" >>")
	}
	write(1, "<< /Type /Catalog /Pages 2 0 R >>")
	write(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	write(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", next)
	for i := 1; i < next; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", next, xref)

	path := filepath.Join(t.TempDir(), "transcript.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

var transcriptPages = [][]string{
	{
		"Year Session Unit Name Mark Grade CP",
		"2021 S1 CHEM1001 Introductory Chemistry 75 D 6",
	},
	nil,
	{
		"2023 S2 BIOL4999 Honours Thesis B 85 A 8",
		"Credit points gained 14",
	},
}

func TestPDFSource_LinePerRow(t *testing.T) {
	path := writePDF(t, transcriptPages)

	pages, err := document.PDFSource{}.Pages(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Year Session Unit Name Mark Grade CP\n2021 S1 CHEM1001 Introductory Chemistry 75 D 6",
		"",
		"2023 S2 BIOL4999 Honours Thesis B 85 A 8\nCredit points gained 14",
	}, pages)
}

func TestPDFSource_Process(t *testing.T) {
	path := writePDF(t, transcriptPages)

	p := transcript.NewProcessor(document.PDFSource{}, types.SectionConfig{}, nil)
	got, err := p.Process(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, got.Records, 2)
	assert.Equal(t, "CHEM1001", got.Records[0].UnitCode)
	assert.Equal(t, "Honours Thesis B", got.Records[1].UnitName)
	assert.Equal(t, types.MeanOf(80.7), got.WAM)
	assert.Equal(t, types.MeanOf(85), got.EIHWAM)
}
