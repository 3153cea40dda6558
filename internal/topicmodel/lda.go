// Package topicmodel fits latent Dirichlet allocation over the
// preprocessed corpus and projects the result for charting.
package topicmodel

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/logger"
)

// Ensure LDA implements the interface.
var _ driven.TopicModeler = (*LDA)(nil)

// LDA fits a latent Dirichlet allocation model.
type LDA struct{}

// NewLDA creates a new LDA topic modeler.
func NewLDA() *LDA {
	return &LDA{}
}

// Fit vectorises the bag texts and fits the model.
// A non-zero seed forces single-process Gibbs sampling with a fixed
// random source so repeated runs produce identical topics.
func (l *LDA) Fit(
	ctx context.Context, bags []domain.Bag, params domain.PipelineParams,
) (*domain.TopicModelResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	corpus := make([]string, 0, len(bags))
	for _, bag := range bags {
		if strings.TrimSpace(bag.Text) != "" {
			corpus = append(corpus, bag.Text)
		}
	}
	if len(corpus) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// 1. Bound the vocabulary. Terms beyond the cap (by corpus
	// frequency) become stop words for the vectoriser.
	pruned, distinct := pruneVocabulary(corpus, params.VocabularyCap)
	kept := distinct - len(pruned)
	if kept < params.TopicCount {
		return nil, fmt.Errorf("%w: %d distinct terms for %d topics",
			domain.ErrDegenerateVocabulary, kept, params.TopicCount)
	}
	logger.Debug("vocabulary: %d distinct terms, %d pruned", distinct, len(pruned))

	// 2. Configure the model.
	vectoriser := nlp.NewCountVectoriser(pruned...)
	lda := nlp.NewLatentDirichletAllocation(params.TopicCount)
	lda.Iterations = params.Iterations
	lda.TransformationPasses = max(1, params.Iterations/2)
	if params.Seed != 0 {
		// Parallel sampling is non-deterministic even with a fixed
		// source, so a seeded run uses a single process.
		lda.Processes = 1
		lda.Rnd = rand.New(rand.NewSource(uint64(params.Seed)))
	} else {
		lda.Processes = params.Workers
	}

	// 3. Fit. docsOverTopics comes back topics x docs.
	pipeline := nlp.NewPipeline(vectoriser, lda)
	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelFailed, err)
	}
	topicsOverWords := lda.Components()

	// 4. Recover the vocabulary in column order.
	vocab := make([]string, len(vectoriser.Vocabulary))
	for term, index := range vectoriser.Vocabulary {
		vocab[index] = term
	}

	return buildResult(params.TopicCount, vocab, topicsOverWords, docsOverTopics), nil
}

// buildResult shapes the raw model matrices into the result type.
func buildResult(
	topicCount int, vocab []string, topicsOverWords, docsOverTopics mat.Matrix,
) *domain.TopicModelResult {
	_, docCount := docsOverTopics.Dims()

	topics := make([]domain.Topic, topicCount)
	for topicID := 0; topicID < topicCount; topicID++ {
		terms := make([]domain.TermWeight, len(vocab))
		for wordIndex, term := range vocab {
			terms[wordIndex] = domain.TermWeight{
				Term:   term,
				Weight: topicsOverWords.At(topicID, wordIndex),
			}
		}
		domain.SortTermsByWeight(terms)

		weights := make([]float64, docCount)
		for doc := 0; doc < docCount; doc++ {
			weights[doc] = docsOverTopics.At(topicID, doc)
		}

		topics[topicID] = domain.Topic{
			ID:              topicID,
			Terms:           terms,
			DocumentWeights: weights,
		}
	}

	dominant := make([]int, docCount)
	for doc := 0; doc < docCount; doc++ {
		best := 0.0
		winner := 0
		for topicID := 0; topicID < topicCount; topicID++ {
			if w := docsOverTopics.At(topicID, doc); w > best {
				best = w
				winner = topicID
			}
		}
		dominant[doc] = winner
	}

	// Accumulated weight per topic, scaled against the heaviest.
	accumulated := make([]float64, topicCount)
	heaviest := 0.0
	for topicID := 0; topicID < topicCount; topicID++ {
		for doc := 0; doc < docCount; doc++ {
			accumulated[topicID] += docsOverTopics.At(topicID, doc)
		}
		if accumulated[topicID] > heaviest {
			heaviest = accumulated[topicID]
		}
	}
	shares := make([]float64, topicCount)
	for topicID := 0; topicID < topicCount; topicID++ {
		if heaviest > 0 {
			shares[topicID] = accumulated[topicID] / heaviest
		}
	}

	return &domain.TopicModelResult{
		Topics:         topics,
		Vocabulary:     vocab,
		DominantTopics: dominant,
		TopicShares:    shares,
	}
}

// pruneVocabulary returns the terms beyond the cap, ordered so the
// rarest terms are pruned first, and the distinct term count.
// Ties break alphabetically to keep the pruned set stable.
func pruneVocabulary(corpus []string, limit int) ([]string, int) {
	frequency := make(map[string]int)
	for _, text := range corpus {
		for _, token := range strings.Fields(text) {
			frequency[token]++
		}
	}

	if len(frequency) <= limit {
		return nil, len(frequency)
	}

	terms := make([]string, 0, len(frequency))
	for term := range frequency {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if frequency[terms[i]] != frequency[terms[j]] {
			return frequency[terms[i]] > frequency[terms[j]]
		}
		return terms[i] < terms[j]
	})

	return terms[limit:], len(frequency)
}
