package driven

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// Loader transforms raw documents into corpus documents.
// Each loader handles specific MIME types (e.g., JSON, DOCX, images).
type Loader interface {
	// SupportedMIMETypes returns the MIME types this loader handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific loaders should return 50-89.
	// Fallback loaders should return 1-9.
	Priority() int

	// Load converts a raw document into a corpus document.
	Load(ctx context.Context, raw *domain.RawDocument) (*LoadResult, error)
}

// LoadResult contains the output of loading.
type LoadResult struct {
	// Document is the loaded document with Content populated.
	Document domain.Document
}

// LoaderRegistry selects the appropriate loader for a raw document.
// It maintains a priority-ordered list of loaders and dispatches on
// MIME type.
type LoaderRegistry interface {
	// Load transforms a raw document using the best matching loader.
	Load(ctx context.Context, raw *domain.RawDocument) (*LoadResult, error)

	// Register adds a loader to the registry.
	Register(loader Loader)

	// SupportedMIMETypes returns all MIME types that can be loaded.
	SupportedMIMETypes() []string
}
