// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is the largest vertical distance, in text space units,
// between two glyphs placed on the same line.
const rowTolerance = 2.0

// PDFSource reads page text directly from a PDF file.
type PDFSource struct{}

// Pages opens the PDF at path and returns the text of every page, one line
// per visual row. Pages with no content yield an empty string.
func (PDFSource) Pages(ctx context.Context, path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, acquisitionError(path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(i)
		if p.V.IsNull() || p.V.Key("Contents").IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := pageText(p)
		if err != nil {
			return nil, acquisitionError(path, fmt.Errorf("page %d: %w", i, err))
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// pageText lays out the glyphs of p as lines joined by "\n". The pdf
// package panics on malformed content streams.
func pageText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading content: %v", r)
		}
	}()

	rows := groupRows(p.Content().Text)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.String()
	}
	return strings.Join(lines, "\n"), nil
}

// textRow is the glyphs sharing one baseline.
type textRow struct {
	y     float64
	texts []pdf.Text
}

// groupRows buckets glyphs by baseline and orders the rows top to bottom.
// Glyphs keep their content-stream order within a row until String sorts
// them by x.
func groupRows(texts []pdf.Text) []textRow {
	var rows []textRow
	for _, t := range texts {
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, texts: []pdf.Text{t}})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

// String joins the row's glyphs left to right. A space is inserted where a
// glyph starts clear of the end of the previous one.
func (r textRow) String() string {
	texts := append([]pdf.Text(nil), r.texts...)
	sort.SliceStable(texts, func(i, j int) bool { return texts[i].X < texts[j].X })

	var b strings.Builder
	var prev *pdf.Text
	for i := range texts {
		t := &texts[i]
		if prev != nil && gapBetween(*prev, *t) && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prev = t
	}
	return strings.TrimRight(b.String(), " ")
}

// gapBetween reports whether next starts visibly after prev ends.
func gapBetween(prev, next pdf.Text) bool {
	gap := next.X - (prev.X + prev.W)
	limit := prev.FontSize * 0.15
	if limit < 0.5 {
		limit = 0.5
	}
	return gap > limit
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
