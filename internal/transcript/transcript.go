// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript runs documents through the extraction pipeline:
// page text, then the results section, then Records, then WAM and EIHWAM.
package transcript

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/transcript-wam/internal/aggregate"
	"github.com/pdiddy/transcript-wam/internal/document"
	"github.com/pdiddy/transcript-wam/internal/record"
	"github.com/pdiddy/transcript-wam/internal/section"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

// Processor turns transcript documents into Transcripts.
type Processor struct {
	source document.PageSource
	mode   types.SectionMode
	log    *zap.Logger

	// now and newID are replaced in tests.
	now   func() time.Time
	newID func() string
}

// NewProcessor returns a Processor that reads pages from src and locates
// the results section according to cfg. A nil logger discards output.
func NewProcessor(src document.PageSource, cfg types.SectionConfig, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	mode := cfg.Mode
	if mode == "" {
		mode = types.SectionContinuous
	}
	return &Processor{
		source: src,
		mode:   mode,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

// Lines returns the candidate section lines of pages.
func (p *Processor) Lines(pages []string) []string {
	if p.mode == types.SectionPerPage {
		return section.ExtractPerPage(pages)
	}
	return section.Extract(pages)
}

// Rows reads the document at path and returns its accepted Records and the
// section lines that were skipped.
func (p *Processor) Rows(ctx context.Context, path string) ([]types.Record, []record.Skipped, error) {
	pages, err := p.source.Pages(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	lines := p.Lines(pages)
	recs, skipped, err := record.ParseWithSkips(lines, p.log.With(zap.String("source", path)))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return recs, skipped, nil
}

// Process reads and parses the document at path and computes both means.
// Any acquisition or format error aborts the document; no partial
// Transcript is returned. A zero denominator is not an error: the
// affected mean is marked unavailable.
func (p *Processor) Process(ctx context.Context, path string) (types.Transcript, error) {
	recs, skipped, err := p.Rows(ctx, path)
	if err != nil {
		return types.Transcript{}, err
	}

	summary, err := aggregate.Summarize(recs)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("aggregating %s: %w", path, err)
	}

	p.log.Info("transcript processed",
		zap.String("source", path),
		zap.Int("records", len(recs)),
		zap.Int("skipped", len(skipped)),
		zap.Bool("wam_available", summary.WAM.Available),
		zap.Bool("eihwam_available", summary.EIHWAM.Available),
	)

	return types.Transcript{
		ID:          p.newID(),
		Source:      path,
		Records:     recs,
		WAM:         summary.WAM,
		EIHWAM:      summary.EIHWAM,
		ProcessedAt: p.now(),
	}, nil
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Processed int
	Failed    int
}

// Total returns the number of documents attempted.
func (r BatchResult) Total() int {
	return r.Processed + r.Failed
}

// HasFailures reports whether any document failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessBatch processes each path in order, printing per-document status
// to w. A failed document is reported and skipped; the others still run.
// Cancelling ctx stops the batch before the next document.
func ProcessBatch(ctx context.Context, p *Processor, paths []string, w io.Writer) ([]types.Transcript, BatchResult, error) {
	var (
		out    []types.Transcript
		result BatchResult
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return out, result, err
		}

		t, err := p.Process(ctx, path)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", path, err)
			p.log.Warn("transcript failed", zap.String("source", path), zap.Error(err))
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "processed: %s (%d records)\n", path, len(t.Records))
		out = append(out, t)
		result.Processed++
	}
	if len(paths) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d processed, %d failed (total: %d)\n",
			result.Processed, result.Failed, result.Total())
	}
	return out, result, nil
}
