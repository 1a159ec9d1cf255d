// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"context"
	"os"
)

// TextSource reads an already-extracted plain-text transcript, such as the
// output of pdftotext. Form feeds separate pages.
type TextSource struct{}

func (TextSource) Pages(_ context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, acquisitionError(path, err)
	}
	return splitPages(string(data)), nil
}
