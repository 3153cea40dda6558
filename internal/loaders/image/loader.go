// Package image loads scanned narrative documents through an OCR
// engine. Without a working engine (non-cgo builds) documents are
// skipped with domain.ErrNotImplemented.
package image

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/loaders"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles image documents via OCR.
type Loader struct {
	engine driven.OCREngine
}

// New creates a new image loader backed by the given OCR engine.
func New(engine driven.OCREngine) *Loader {
	return &Loader{engine: engine}
}

// SupportedMIMETypes returns the MIME types this loader handles.
func (l *Loader) SupportedMIMETypes() []string {
	return []string{
		"image/png",
		"image/jpeg",
		"image/tiff",
		"image/bmp",
	}
}

// Priority returns the selection priority.
func (l *Loader) Priority() int {
	return 60
}

// Load runs OCR over the image bytes.
func (l *Loader) Load(ctx context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if l.engine == nil {
		return nil, fmt.Errorf("%w: no OCR engine", domain.ErrNotImplemented)
	}

	text, err := l.engine.Recognise(ctx, raw.Content)
	if err != nil {
		return nil, fmt.Errorf("recognise %s: %w", raw.URI, err)
	}

	doc := domain.Document{
		ID:       uuid.New().String(),
		Source:   raw.Source,
		URI:      raw.URI,
		Title:    loaders.TitleFor(raw),
		Content:  strings.TrimSpace(text),
		Format:   "image",
		Metadata: loaders.CopyMetadata(raw),
		LoadedAt: time.Now(),
	}

	return &driven.LoadResult{Document: doc}, nil
}
