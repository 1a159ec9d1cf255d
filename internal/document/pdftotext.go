// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/transcript-wam/internal/container"
)

// DefaultPdftotextImage is used when no image is configured.
const DefaultPdftotextImage = "minidocks/poppler:latest"

// pdftotextArgs reads the PDF from stdin and writes layout-preserving text
// to stdout, one form feed after each page.
var pdftotextArgs = []string{"pdftotext", "-layout", "-enc", "UTF-8", "-eol", "unix", "-", "-"}

// PdftotextSource extracts page text by piping the PDF through poppler's
// pdftotext inside a container. It depends on a container.Runtime (docker
// or podman) injected at construction time.
type PdftotextSource struct {
	runtime container.Runtime
	image   string
}

// NewPdftotextSource returns a source that runs image on rt. It verifies
// that the image exists locally before returning.
func NewPdftotextSource(rt container.Runtime, image string) (*PdftotextSource, error) {
	if image == "" {
		image = DefaultPdftotextImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &PdftotextSource{runtime: rt, image: image}, nil
}

func (s *PdftotextSource) Pages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, acquisitionError(path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := s.runtime.Run(ctx, s.image, pdftotextArgs, f, &out); err != nil {
		return nil, acquisitionError(path, err)
	}
	if out.Len() == 0 {
		return nil, acquisitionError(path, fmt.Errorf("pdftotext produced empty output"))
	}
	return splitPages(out.String()), nil
}
