package driven

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// TextProcessor is one stage of the preprocessing chain.
// The first processor receives nil bags and creates them from the
// document content; later processors transform the bag list.
type TextProcessor interface {
	// Name returns the processor name.
	Name() string

	// Process transforms the bag list for one document.
	Process(ctx context.Context, doc *domain.Document, bags []domain.Bag) ([]domain.Bag, error)
}

// TextPipeline chains TextProcessors and runs them in order.
type TextPipeline interface {
	// Process runs the document through all processors in order.
	Process(ctx context.Context, doc *domain.Document) ([]domain.Bag, error)
}
