// Package cleaner provides the normalisation stage: lowercasing and
// stripping everything that is not a letter.
package cleaner

import (
	"context"
	"strings"
	"unicode"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.TextProcessor = (*Processor)(nil)

// Processor normalises bag text for vectorisation.
type Processor struct{}

// New creates a new cleaner processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "cleaner"
}

// Process lowercases each bag and replaces non-letter runs with
// single spaces. Bags that clean down to nothing are dropped.
func (p *Processor) Process(_ context.Context, _ *domain.Document, bags []domain.Bag) ([]domain.Bag, error) {
	cleaned := make([]domain.Bag, 0, len(bags))

	for _, bag := range bags {
		text := Clean(bag.Text)
		if text == "" {
			continue
		}
		bag.Text = text
		cleaned = append(cleaned, bag)
	}

	return cleaned, nil
}

// Clean lowercases text and collapses non-letter runs to spaces.
// Digits are dropped; topic terms are words, not figures.
func Clean(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			sb.WriteRune(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(sb.String())
}
