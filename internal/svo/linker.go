// Package svo links narrative terms to Scientific Variable Object
// dictionary entries.
package svo

import (
	"context"
	"sort"
	"strings"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure Linker implements the interface.
var _ driven.SVOLinker = (*Linker)(nil)

// Score constants. An exact name hit outranks any keyword hit, and a
// keyword hit outranks a partial (substring) hit.
const (
	scoreExactName  = 1.0
	scoreKeyword    = 0.8
	scoreSubstring  = 0.5
	minSubstringLen = 4
)

// Linker matches terms against the SVO dictionary.
type Linker struct{}

// New creates a new SVO linker.
func New() *Linker {
	return &Linker{}
}

// Link resolves each term to zero-or-more dictionary entries.
// Every returned link references a key present in the dictionary;
// results are ordered by descending score, then term, then variable.
func (l *Linker) Link(
	ctx context.Context, terms []string, dict *domain.SVODictionary,
) ([]domain.SVOLink, error) {
	if dict == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := dict.Validate(); err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	type linkKey struct {
		term     string
		variable string
	}
	best := make(map[linkKey]float64)

	for _, rawTerm := range terms {
		term := strings.ToLower(strings.TrimSpace(rawTerm))
		if term == "" {
			continue
		}

		for _, entry := range dict.Entries() {
			score := scoreEntry(term, entry)
			if score == 0 {
				continue
			}
			key := linkKey{term: term, variable: strings.ToLower(entry.Name)}
			if score > best[key] {
				best[key] = score
			}
		}
	}

	links := make([]domain.SVOLink, 0, len(best))
	for key, score := range best {
		links = append(links, domain.SVOLink{
			Term:     key.term,
			Variable: key.variable,
			Score:    score,
		})
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Score != links[j].Score {
			return links[i].Score > links[j].Score
		}
		if links[i].Term != links[j].Term {
			return links[i].Term < links[j].Term
		}
		return links[i].Variable < links[j].Variable
	})

	return links, nil
}

// scoreEntry scores one term against one dictionary entry.
func scoreEntry(term string, entry domain.SVOEntry) float64 {
	if term == strings.ToLower(entry.Name) {
		return scoreExactName
	}

	for _, keyword := range entry.Keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if term == keyword {
			return scoreKeyword
		}
		// Multi-word keywords count when the term is one of their words.
		for _, word := range strings.Fields(keyword) {
			if term == word {
				return scoreKeyword
			}
		}
	}

	// Substring fallback for longer terms only; short terms produce
	// too many accidental hits.
	if len(term) >= minSubstringLen {
		if strings.Contains(strings.ToLower(entry.StandardName), term) {
			return scoreSubstring
		}
	}

	return 0
}
