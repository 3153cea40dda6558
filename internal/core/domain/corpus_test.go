package domain

import "testing"

func TestCorpusImmutability(t *testing.T) {
	docs := []Document{{ID: "a", Content: "text"}}
	c := NewCorpus(docs)

	docs[0].Content = "mutated"

	if c.Document(0).Content != "text" {
		t.Error("corpus should copy documents at construction")
	}
}

func TestCorpusIsEmpty(t *testing.T) {
	t.Run("no documents", func(t *testing.T) {
		if !NewCorpus(nil).IsEmpty() {
			t.Error("expected empty")
		}
	})

	t.Run("documents without content", func(t *testing.T) {
		c := NewCorpus([]Document{{ID: "a"}, {ID: "b"}})
		if !c.IsEmpty() {
			t.Error("expected empty when no document has content")
		}
	})

	t.Run("one document with content", func(t *testing.T) {
		c := NewCorpus([]Document{{ID: "a"}, {ID: "b", Content: "x"}})
		if c.IsEmpty() {
			t.Error("expected non-empty")
		}
	})
}

func TestSortTermsByWeight(t *testing.T) {
	terms := []TermWeight{
		{Term: "beta", Weight: 0.2},
		{Term: "alpha", Weight: 0.5},
		{Term: "delta", Weight: 0.2},
	}
	SortTermsByWeight(terms)

	if terms[0].Term != "alpha" {
		t.Errorf("expected alpha first, got %s", terms[0].Term)
	}
	// Equal weights break ties alphabetically for reproducible output.
	if terms[1].Term != "beta" || terms[2].Term != "delta" {
		t.Errorf("tie-break ordering wrong: %v", terms)
	}
}

func TestDominantTopicCounts(t *testing.T) {
	r := &TopicModelResult{
		Topics:         []Topic{{ID: 0}, {ID: 1}},
		DominantTopics: []int{0, 1, 1, 0, 1},
	}
	counts := r.DominantTopicCounts()
	if counts[0] != 2 || counts[1] != 3 {
		t.Errorf("wrong counts: %v", counts)
	}
}
