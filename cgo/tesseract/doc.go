// Package tesseract provides CGO bindings for the Tesseract OCR
// engine. It implements the driven.OCREngine interface.
//
// Build requires:
//   - libtesseract and libleptonica development headers
//   - a C compiler
package tesseract
