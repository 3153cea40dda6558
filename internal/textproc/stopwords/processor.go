// Package stopwords provides the filtering stage: removing function
// words and too-short tokens before vectorisation.
package stopwords

import (
	"context"
	"strings"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.TextProcessor = (*Processor)(nil)

// DefaultMinTokenLength is the minimum token length kept.
const DefaultMinTokenLength = 3

// defaultStopWords is a compact English stop list. Narratives are
// conversational, so auxiliaries and hedging words dominate without it.
var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "all", "also", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could",
	"did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "him", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "just", "like", "may", "me", "might", "more", "most",
	"must", "my", "need", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "out", "over", "own",
	"really", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until",
	"up", "us", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would",
	"you", "your", "yours",
}

// Processor removes stop words and short tokens from bags.
type Processor struct {
	stopWords map[string]struct{}
	minLength int
}

// Option configures the stopwords processor.
type Option func(*Processor)

// WithExtra adds words to the stop list.
func WithExtra(words ...string) Option {
	return func(p *Processor) {
		for _, w := range words {
			p.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithMinTokenLength sets the minimum token length kept.
func WithMinTokenLength(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.minLength = n
		}
	}
}

// New creates a new stopwords processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		stopWords: make(map[string]struct{}, len(defaultStopWords)),
		minLength: DefaultMinTokenLength,
	}
	for _, w := range defaultStopWords {
		p.stopWords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "stopwords"
}

// Process filters each bag's tokens. Bags left empty are dropped.
func (p *Processor) Process(_ context.Context, _ *domain.Document, bags []domain.Bag) ([]domain.Bag, error) {
	filtered := make([]domain.Bag, 0, len(bags))

	for _, bag := range bags {
		tokens := strings.Fields(bag.Text)
		kept := tokens[:0]
		for _, token := range tokens {
			if len(token) < p.minLength {
				continue
			}
			if _, stop := p.stopWords[token]; stop {
				continue
			}
			kept = append(kept, token)
		}
		if len(kept) == 0 {
			continue
		}
		bag.Text = strings.Join(kept, " ")
		filtered = append(filtered, bag)
	}

	return filtered, nil
}

// Default returns a copy of the built-in stop list.
func Default() []string {
	words := make([]string, len(defaultStopWords))
	copy(words, defaultStopWords)
	return words
}
