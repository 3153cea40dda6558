package driven

import "context"

// OCREngine extracts text from scanned images.
// The cgo build links Tesseract; other builds return
// domain.ErrNotImplemented and the image loader skips the document.
type OCREngine interface {
	// Recognise runs OCR over the encoded image bytes.
	Recognise(ctx context.Context, image []byte) (string, error)

	// Close releases engine resources.
	Close() error
}
