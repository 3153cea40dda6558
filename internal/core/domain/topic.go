package domain

import "sort"

// TermWeight is a single weighted vocabulary term.
type TermWeight struct {
	// Term is the vocabulary word.
	Term string

	// Weight is the unnormalised weight assigned by the model.
	Weight float64
}

// Topic is one latent topic discovered by the model.
// Produced once per run; not mutated afterwards.
type Topic struct {
	// ID is the zero-based topic index.
	ID int

	// Terms holds every vocabulary term with its weight for this topic,
	// sorted by descending weight.
	Terms []TermWeight

	// DocumentWeights holds the per-document membership weight,
	// indexed by corpus position.
	DocumentWeights []float64
}

// TopTerms returns the n highest-weighted terms of the topic.
func (t Topic) TopTerms(n int) []TermWeight {
	if n > len(t.Terms) {
		n = len(t.Terms)
	}
	return t.Terms[:n]
}

// TopicModelResult is the output of fitting the topic model.
type TopicModelResult struct {
	// Topics are the discovered topics, indexed by topic ID.
	Topics []Topic

	// Vocabulary is the term list backing the model, in column order.
	Vocabulary []string

	// DominantTopics maps corpus position to the topic with the
	// highest membership weight for that document.
	DominantTopics []int

	// TopicShares is each topic's accumulated document weight scaled
	// against the heaviest topic, in [0, 1].
	TopicShares []float64
}

// DominantTopicCounts returns, per topic, how many documents have that
// topic as their dominant topic.
func (r *TopicModelResult) DominantTopicCounts() []int {
	counts := make([]int, len(r.Topics))
	for _, t := range r.DominantTopics {
		if t >= 0 && t < len(counts) {
			counts[t]++
		}
	}
	return counts
}

// SortTermsByWeight sorts a term list by descending weight, breaking
// ties alphabetically so output ordering is reproducible.
func SortTermsByWeight(terms []TermWeight) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Weight != terms[j].Weight {
			return terms[i].Weight > terms[j].Weight
		}
		return terms[i].Term < terms[j].Term
	})
}
