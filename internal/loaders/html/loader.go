package html

import (
	"context"
	"html"
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

// Loader handles HTML documents.
type Loader struct{}

// New creates a new HTML loader.
func New() *Loader {
	return &Loader{}
}

// SupportedMIMETypes returns the MIME types this loader handles.
func (l *Loader) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (l *Loader) Priority() int {
	return 50
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	titleRe  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	spaceRe  = regexp.MustCompile(`[ \t]+`)
	blankRe  = regexp.MustCompile(`\n{3,}`)
)

// Load strips markup and entities down to plain prose.
func (l *Loader) Load(_ context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := string(raw.Content)

	title := loaders.TitleFor(raw)
	if m := titleRe.FindStringSubmatch(content); m != nil {
		if t := strings.TrimSpace(html.UnescapeString(m[1])); t != "" {
			title = t
		}
	}

	content = scriptRe.ReplaceAllString(content, " ")
	content = styleRe.ReplaceAllString(content, " ")
	content = tagRe.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	content = spaceRe.ReplaceAllString(content, " ")
	content = blankRe.ReplaceAllString(content, "\n\n")

	doc := domain.Document{
		ID:       uuid.New().String(),
		Source:   raw.Source,
		URI:      raw.URI,
		Title:    title,
		Content:  strings.TrimSpace(content),
		Format:   "html",
		Metadata: loaders.CopyMetadata(raw),
		LoadedAt: time.Now(),
	}

	return &driven.LoadResult{Document: doc}, nil
}
