// Package jsondoc loads JSON documents by collecting their string
// values into narrative text. Survey exports and issue dumps commonly
// arrive as JSON with the prose buried in fields.
package jsondoc

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/loaders"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles JSON documents.
type Loader struct{}

// New creates a new JSON loader.
func New() *Loader {
	return &Loader{}
}

// SupportedMIMETypes returns the MIME types this loader handles.
func (l *Loader) SupportedMIMETypes() []string {
	return []string{"application/json"}
}

// Priority returns the selection priority.
func (l *Loader) Priority() int {
	return 50
}

// Load parses the JSON and concatenates its string values in key order.
func (l *Loader) Load(_ context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	var parsed any
	if err := json.Unmarshal(raw.Content, &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse JSON %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}

	var sb strings.Builder
	collectStrings(parsed, &sb)

	title := titleFromJSON(parsed)
	if title == "" {
		title = loaders.TitleFor(raw)
	}

	doc := domain.Document{
		ID:       uuid.New().String(),
		Source:   raw.Source,
		URI:      raw.URI,
		Title:    title,
		Content:  strings.TrimSpace(sb.String()),
		Format:   "json",
		Metadata: loaders.CopyMetadata(raw),
		LoadedAt: time.Now(),
	}

	return &driven.LoadResult{Document: doc}, nil
}

// collectStrings walks the parsed value depth-first, appending string
// leaves. Map keys are visited in sorted order so output is stable.
func collectStrings(v any, sb *strings.Builder) {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) != "" {
			sb.WriteString(val)
			sb.WriteString("\n")
		}
	case []any:
		for _, item := range val {
			collectStrings(item, sb)
		}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectStrings(val[k], sb)
		}
	}
}

// titleFromJSON picks a title field from a top-level object.
func titleFromJSON(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"title", "name", "subject"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
