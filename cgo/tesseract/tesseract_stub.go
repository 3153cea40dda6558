//go:build !cgo

package tesseract

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// DefaultLanguage is the Tesseract language model loaded when none is
// given.
const DefaultLanguage = "eng"

// Engine runs OCR through a shared Tesseract API handle.
// This is a stub for builds without CGO.
type Engine struct {
	language string
}

// New initialises a Tesseract engine for the given language.
// This is a stub for builds without CGO.
func New(language string) (*Engine, error) {
	if language == "" {
		language = DefaultLanguage
	}
	return &Engine{language: language}, nil
}

// Recognise runs OCR over the encoded image bytes.
func (e *Engine) Recognise(_ context.Context, _ []byte) (string, error) {
	return "", domain.ErrNotImplemented
}

// Close releases engine resources.
func (e *Engine) Close() error {
	return nil
}
