package driven

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// BackboneMapper matches discovered topics to science-backbone domains.
type BackboneMapper interface {
	// MapTopics scores each topic's top terms against every backbone
	// domain and returns one MappingResult per topic. Overrides force
	// a manual topic-to-domain assignment (topic ID -> domain name).
	MapTopics(
		ctx context.Context,
		model *domain.TopicModelResult,
		backbone *domain.ScienceBackbone,
		overrides map[int]string,
	) ([]domain.MappingResult, error)
}

// ComponentExtractor tags decision-component spans in corpus documents.
type ComponentExtractor interface {
	// Extract returns all tagged spans, deduplicated on
	// (document, span, category).
	Extract(ctx context.Context, corpus *domain.Corpus) ([]domain.DecisionComponent, error)
}

// SVOLinker matches terms against the SVO dictionary.
type SVOLinker interface {
	// Link resolves each term to zero-or-more dictionary entries.
	// Every returned link references a key present in dict.
	Link(ctx context.Context, terms []string, dict *domain.SVODictionary) ([]domain.SVOLink, error)
}
