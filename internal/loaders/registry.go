package loaders

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.LoaderRegistry = (*Registry)(nil)

// Registry dispatches raw documents to the highest-priority loader
// registered for their MIME type.
type Registry struct {
	mu      sync.RWMutex
	loaders []driven.Loader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a loader to the registry.
func (r *Registry) Register(loader driven.Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders = append(r.loaders, loader)
}

// Load transforms a raw document using the best matching loader.
// Returns domain.ErrUnsupportedFormat when no loader accepts the
// document's MIME type.
func (r *Registry) Load(ctx context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	loader := r.bestMatch(raw.MIMEType)
	if loader == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, raw.MIMEType)
	}

	return loader.Load(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be loaded, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, l := range r.loaders {
		for _, mt := range l.SupportedMIMETypes() {
			seen[mt] = struct{}{}
		}
	}

	types := make([]string, 0, len(seen))
	for mt := range seen {
		types = append(types, mt)
	}
	sort.Strings(types)
	return types
}

// bestMatch returns the highest-priority loader for the MIME type.
func (r *Registry) bestMatch(mimeType string) driven.Loader {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best driven.Loader
	for _, l := range r.loaders {
		for _, mt := range l.SupportedMIMETypes() {
			if mt != mimeType {
				continue
			}
			if best == nil || l.Priority() > best.Priority() {
				best = l
			}
		}
	}
	return best
}
