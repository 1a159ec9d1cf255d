// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads transcript files into per-page plain text.
// Different backends (native PDF, plain text, pdftotext in a container)
// implement PageSource.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/transcript-wam/internal/container"
	"github.com/pdiddy/transcript-wam/pkg/types"
)

// ErrAcquisition wraps every failure to open or decode a document.
var ErrAcquisition = errors.New("document acquisition failed")

// formFeed separates pages in pdftotext output.
const formFeed = "\f"

// PageSource returns the text of each page of a document, in page order.
// A page without extractable text is returned as an empty string.
type PageSource interface {
	Pages(ctx context.Context, path string) ([]string, error)
}

// New returns the PageSource for the configured backend. The pdftotext
// backend detects a container runtime and checks the image up front.
func New(cfg types.DocumentConfig) (PageSource, error) {
	switch cfg.Backend {
	case types.BackendPDF, "":
		return PDFSource{}, nil
	case types.BackendText:
		return TextSource{}, nil
	case types.BackendPdftotext:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return NewPdftotextSource(rt, cfg.Image)
	default:
		return nil, fmt.Errorf("unknown document backend %q (want pdf, text, or pdftotext)", cfg.Backend)
	}
}

// acquisitionError wraps err so that errors.Is(err, ErrAcquisition) holds.
func acquisitionError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrAcquisition, path, err)
}

// splitPages splits form-feed separated text into pages. A trailing form
// feed does not produce an extra page.
func splitPages(text string) []string {
	if text == "" {
		return nil
	}
	pages := strings.Split(text, formFeed)
	if len(pages) > 1 && pages[len(pages)-1] == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}
