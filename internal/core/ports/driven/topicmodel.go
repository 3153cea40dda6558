package driven

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// TopicModeler fits a fixed-topic-count model over preprocessed bags.
type TopicModeler interface {
	// Fit vectorises the bag texts and fits the topic model.
	// Deterministic for a fixed params.Seed.
	// Returns domain.ErrEmptyCorpus when no bag carries text and
	// domain.ErrDegenerateVocabulary when too few distinct terms
	// survive vectorisation.
	Fit(ctx context.Context, bags []domain.Bag, params domain.PipelineParams) (*domain.TopicModelResult, error)
}

// Embedder projects per-document topic weights into two dimensions
// for the scatter chart.
type Embedder interface {
	// Embed returns one (x, y) coordinate per document.
	Embed(ctx context.Context, model *domain.TopicModelResult) ([][2]float64, error)
}
