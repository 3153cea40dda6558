// Package textproc provides the preprocessing chain that turns loaded
// documents into word bags for topic modelling.
package textproc

import (
	"context"
	"fmt"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TextPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TextProcessors and runs them in order.
type Pipeline struct {
	processors []driven.TextProcessor
}

// NewPipeline creates a new processing pipeline with the given
// processors. Processors are executed in the order provided.
func NewPipeline(processors ...driven.TextProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the document through all processors in order.
// The first processor receives nil bags and should create them.
// Subsequent processors receive and may modify the bags.
func (p *Pipeline) Process(ctx context.Context, doc *domain.Document) ([]domain.Bag, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	var bags []domain.Bag

	for _, processor := range p.processors {
		var err error
		bags, err = processor.Process(ctx, doc, bags)
		if err != nil {
			return nil, fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}

	return bags, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.TextProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}
