package markdown

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/loaders"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles Markdown documents.
type Loader struct{}

// New creates a new Markdown loader.
func New() *Loader {
	return &Loader{}
}

// SupportedMIMETypes returns the MIME types this loader handles.
func (l *Loader) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (l *Loader) Priority() int {
	return 50
}

var (
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`]*`")
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisRe   = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
	firstHeading = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)

// Load strips Markdown syntax down to plain prose.
func (l *Loader) Load(_ context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := string(raw.Content)

	title := loaders.TitleFor(raw)
	if m := firstHeading.FindStringSubmatch(content); m != nil {
		title = strings.TrimSpace(m[1])
	}

	content = codeFenceRe.ReplaceAllString(content, " ")
	content = inlineCodeRe.ReplaceAllString(content, " ")
	content = imageRe.ReplaceAllString(content, "$1")
	content = linkRe.ReplaceAllString(content, "$1")
	content = headingRe.ReplaceAllString(content, "")
	content = emphasisRe.ReplaceAllString(content, "$1")

	doc := domain.Document{
		ID:       uuid.New().String(),
		Source:   raw.Source,
		URI:      raw.URI,
		Title:    title,
		Content:  strings.TrimSpace(content),
		Format:   "markdown",
		Metadata: loaders.CopyMetadata(raw),
		LoadedAt: time.Now(),
	}

	return &driven.LoadResult{Document: doc}, nil
}
