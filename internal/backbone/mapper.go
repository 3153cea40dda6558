// Package backbone matches discovered topics to the science-backbone
// taxonomy by keyword overlap.
package backbone

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/logger"
)

// Ensure Mapper implements the interface.
var _ driven.BackboneMapper = (*Mapper)(nil)

// Mapper scores topic top terms against backbone domains.
type Mapper struct {
	topTermCount int
}

// New creates a new backbone mapper that considers the n top terms of
// each topic.
func New(topTermCount int) *Mapper {
	if topTermCount < 1 {
		topTermCount = domain.DefaultTopTermCount
	}
	return &Mapper{topTermCount: topTermCount}
}

// MapTopics returns one MappingResult per topic.
//
// Every domain whose evidence terms overlap the topic's top terms is
// included, ordered by descending score then domain name, so equal
// scores surface both candidates rather than hiding one. An override
// replaces the computed matches with a single manual assignment.
func (m *Mapper) MapTopics(
	ctx context.Context,
	model *domain.TopicModelResult,
	backbone *domain.ScienceBackbone,
	overrides map[int]string,
) ([]domain.MappingResult, error) {
	if model == nil || backbone == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := backbone.Validate(); err != nil {
		return nil, err
	}
	for topicID, name := range overrides {
		if _, ok := backbone.Domain(name); !ok {
			return nil, fmt.Errorf("%w: override for topic %d names unknown domain %q",
				domain.ErrInvalidInput, topicID, name)
		}
	}

	results := make([]domain.MappingResult, 0, len(model.Topics))
	for _, topic := range model.Topics {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		topTerms := make([]string, 0, m.topTermCount)
		for _, tw := range topic.TopTerms(m.topTermCount) {
			topTerms = append(topTerms, tw.Term)
		}

		result := domain.MappingResult{
			TopicID:  topic.ID,
			TopTerms: topTerms,
		}

		if name, ok := overrides[topic.ID]; ok {
			dom, _ := backbone.Domain(name)
			match := scoreDomain(*dom, topTerms)
			match.Manual = true
			result.Backbone = []domain.DomainMatch{match}
			results = append(results, result)
			continue
		}

		for _, dom := range backbone.Domains {
			match := scoreDomain(dom, topTerms)
			if match.Score > 0 {
				result.Backbone = append(result.Backbone, match)
			}
		}
		sort.Slice(result.Backbone, func(i, j int) bool {
			if result.Backbone[i].Score != result.Backbone[j].Score {
				return result.Backbone[i].Score > result.Backbone[j].Score
			}
			return result.Backbone[i].Domain < result.Backbone[j].Domain
		})

		if len(result.Backbone) == 0 {
			logger.Debug("topic %d matched no backbone domain", topic.ID)
		}
		results = append(results, result)
	}

	return results, nil
}

// scoreDomain computes the fraction of top terms found in the domain's
// evidence set, and records which subdisciplines contributed.
func scoreDomain(dom domain.BackboneDomain, topTerms []string) domain.DomainMatch {
	evidence := dom.MatchTerms()

	matched := 0
	for _, term := range topTerms {
		if _, ok := evidence[strings.ToLower(term)]; ok {
			matched++
		}
	}

	match := domain.DomainMatch{Domain: dom.Name}
	if len(topTerms) > 0 {
		match.Score = float64(matched) / float64(len(topTerms))
	}
	if matched == 0 {
		return match
	}

	for _, sub := range dom.Subdisciplines {
		subTerms := make(map[string]struct{})
		for _, w := range strings.Fields(strings.ToLower(sub)) {
			subTerms[w] = struct{}{}
		}
		for _, term := range topTerms {
			if _, ok := subTerms[strings.ToLower(term)]; ok {
				match.Subdisciplines = append(match.Subdisciplines, sub)
				break
			}
		}
	}

	return match
}
