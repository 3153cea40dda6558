// Package bagger provides the first preprocessing stage: splitting
// document content into sentence-level word bags.
package bagger

import (
	"context"
	"strings"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.TextProcessor = (*Processor)(nil)

// DefaultMinBagLength is the minimum character count for a bag to be
// kept. Shorter fragments carry no topical signal.
const DefaultMinBagLength = 3

// Processor splits document content into sentence bags.
type Processor struct {
	minLength int
}

// Option configures the bagger processor.
type Option func(*Processor)

// WithMinBagLength sets the minimum bag length in characters.
func WithMinBagLength(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.minLength = n
		}
	}
}

// New creates a new bagger processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		minLength: DefaultMinBagLength,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "bagger"
}

// Process splits the document content on sentence-ending punctuation.
// Input bags are ignored; this processor creates new bags.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Bag) ([]domain.Bag, error) {
	if doc.Content == "" {
		return nil, nil
	}

	sentences := splitSentences(doc.Content)
	bags := make([]domain.Bag, 0, len(sentences))

	position := 0
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < p.minLength {
			continue
		}
		bags = append(bags, domain.Bag{
			DocumentID: doc.ID,
			Position:   position,
			Text:       sentence,
		})
		position++
	}

	return bags, nil
}

// splitSentences breaks text on terminal punctuation. Newlines also
// terminate a sentence so headings and list items form their own bags.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', ';', '\n':
			return true
		}
		return false
	})
}
