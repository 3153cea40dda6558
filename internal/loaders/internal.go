package loaders

import (
	"path/filepath"
	"strings"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// TitleFor extracts a human-readable title for a raw document:
// the metadata title when a connector set one, otherwise a cleaned-up
// form of the URI's base name.
func TitleFor(raw *domain.RawDocument) string {
	if raw.Metadata != nil {
		if title, ok := raw.Metadata["title"].(string); ok && title != "" {
			return title
		}
	}

	filename := filepath.Base(raw.URI)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// CopyMetadata creates a shallow copy of metadata with the MIME type
// recorded for provenance.
func CopyMetadata(raw *domain.RawDocument) map[string]any {
	dst := make(map[string]any, len(raw.Metadata)+1)
	for k, v := range raw.Metadata {
		dst[k] = v
	}
	dst["mime_type"] = raw.MIMEType
	return dst
}
