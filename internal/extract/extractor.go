// Package extract tags decision-component spans in narrative text.
//
// Extraction is rule-based: each category has cue-phrase patterns and
// a tagged span runs from the cue to the end of its sentence. The
// rules favour precision over recall; untagged narrative is expected.
package extract

import (
	"context"
	"regexp"
	"sort"

	"github.com/google/uuid"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.ComponentExtractor = (*Extractor)(nil)

// rule pairs a category with the cue pattern that tags it.
type rule struct {
	category domain.ComponentCategory
	pattern  *regexp.Regexp
}

// Cue patterns per category. Each match extends to the end of the
// sentence so the tagged span reads as a complete statement.
var rules = []rule{
	{domain.CategoryGoal, regexp.MustCompile(
		`(?i)\b(?:our|the|a|main|overall|long.?term)?\s*goals?\s+(?:is|are|of)?[^.!?\n]*[^.!?\n]`)},
	{domain.CategoryGoal, regexp.MustCompile(
		`(?i)\bwe\s+(?:want|hope|aim|wish)\s+to\b[^.!?\n]*`)},
	{domain.CategoryObjective, regexp.MustCompile(
		`(?i)\bobjectives?\s+(?:is|are|of|include)?[^.!?\n]*`)},
	{domain.CategoryObjective, regexp.MustCompile(
		`(?i)\b(?:reduce|increase|improve|restore|maintain|achieve)\s+[^.!?\n]+\bby\s+\d+\s*(?:%|percent)[^.!?\n]*`)},
	{domain.CategoryVariable, regexp.MustCompile(
		`(?i)\b(?:measure|measuring|measured|monitor|monitoring|track|tracking|record|recording)\s+(?:the\s+)?[^.!?\n]+`)},
	{domain.CategoryVariable, regexp.MustCompile(
		`(?i)\b(?:levels?|concentrations?|rates?|amounts?)\s+of\s+[^.!?\n]+`)},
	{domain.CategoryConstraint, regexp.MustCompile(
		`(?i)\b(?:cannot|can't|must\s+not|limited\s+by|constrained\s+by|restricted\s+(?:to|by)|no\s+more\s+than|at\s+most|budget\s+(?:only\s+)?(?:allows|permits))\b[^.!?\n]*`)},
	{domain.CategoryConstraint, regexp.MustCompile(
		`(?i)\b(?:regulations?|permits?|law)\s+(?:require|prohibit|limit)s?\b[^.!?\n]*`)},
	{domain.CategoryIndicator, regexp.MustCompile(
		`(?i)\bindicators?\s+(?:of|for|include)?[^.!?\n]*`)},
	{domain.CategoryIndicator, regexp.MustCompile(
		`(?i)\b(?:a\s+)?(?:sign|proxy|index)\s+(?:of|for)\s+[^.!?\n]+`)},
}

// Extractor applies the cue-phrase rules to every corpus document.
type Extractor struct{}

// New creates a new component extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns all tagged spans across the corpus, deduplicated on
// (document, span, category) and ordered by document, offset, category.
func (e *Extractor) Extract(ctx context.Context, corpus *domain.Corpus) ([]domain.DecisionComponent, error) {
	if corpus == nil {
		return nil, domain.ErrInvalidInput
	}

	type spanKey struct {
		docID    string
		start    int
		end      int
		category domain.ComponentCategory
	}
	seen := make(map[spanKey]struct{})

	var components []domain.DecisionComponent
	for _, doc := range corpus.Documents() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, r := range rules {
			for _, loc := range r.pattern.FindAllStringIndex(doc.Content, -1) {
				key := spanKey{doc.ID, loc[0], loc[1], r.category}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				components = append(components, domain.DecisionComponent{
					ID:         uuid.New().String(),
					DocumentID: doc.ID,
					Category:   r.category,
					Text:       doc.Content[loc[0]:loc[1]],
					Start:      loc[0],
					End:        loc[1],
				})
			}
		}
	}

	sort.Slice(components, func(i, j int) bool {
		if components[i].DocumentID != components[j].DocumentID {
			return components[i].DocumentID < components[j].DocumentID
		}
		if components[i].Start != components[j].Start {
			return components[i].Start < components[j].Start
		}
		if components[i].End != components[j].End {
			return components[i].End < components[j].End
		}
		return components[i].Category < components[j].Category
	})

	logger.Debug("extracted %d decision components from %d documents",
		len(components), corpus.Len())
	return components, nil
}
