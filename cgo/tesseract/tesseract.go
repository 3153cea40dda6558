//go:build cgo

package tesseract

/*
#cgo LDFLAGS: -ltesseract -llept

#include <stdlib.h>
#include <tesseract/capi.h>
#include <leptonica/allheaders.h>
*/
import "C"

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// DefaultLanguage is the Tesseract language model loaded when none is
// given.
const DefaultLanguage = "eng"

// Engine runs OCR through a shared Tesseract API handle.
// Tesseract handles are not thread safe; calls are serialised.
type Engine struct {
	mu     sync.Mutex
	handle *C.TessBaseAPI
	closed bool
}

// New initialises a Tesseract engine for the given language
// (e.g. "eng"). Empty selects DefaultLanguage.
func New(language string) (*Engine, error) {
	if language == "" {
		language = DefaultLanguage
	}

	handle := C.TessBaseAPICreate()
	if handle == nil {
		return nil, errors.New("tesseract: failed to create API handle")
	}

	cLang := C.CString(language)
	defer C.free(unsafe.Pointer(cLang))

	if C.TessBaseAPIInit3(handle, nil, cLang) != 0 {
		C.TessBaseAPIDelete(handle)
		return nil, fmt.Errorf("tesseract: failed to initialise language %q", language)
	}
	return &Engine{handle: handle}, nil
}

// Recognise runs OCR over the encoded image bytes.
func (e *Engine) Recognise(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errors.New("tesseract: empty image")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return "", errors.New("tesseract: engine closed")
	}

	pix := C.pixReadMem(
		(*C.uchar)(unsafe.Pointer(&image[0])),
		C.size_t(len(image)),
	)
	if pix == nil {
		return "", errors.New("tesseract: undecodable image")
	}
	defer C.pixDestroy(&pix)

	C.TessBaseAPISetImage2(e.handle, pix)

	cText := C.TessBaseAPIGetUTF8Text(e.handle)
	if cText == nil {
		return "", errors.New("tesseract: recognition produced no text")
	}
	defer C.TessDeleteText(cText)

	return C.GoString(cText), nil
}

// Close releases the Tesseract handle.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	C.TessBaseAPIEnd(e.handle)
	C.TessBaseAPIDelete(e.handle)
	e.handle = nil
	return nil
}
