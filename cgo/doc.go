// Package cgo provides CGO bindings for native libraries.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - tesseract: Tesseract bindings for image OCR
package cgo
