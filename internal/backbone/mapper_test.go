package backbone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func testBackbone() *domain.ScienceBackbone {
	return &domain.ScienceBackbone{
		Domains: []domain.BackboneDomain{
			{
				Name:           "hydrology",
				Subdisciplines: []string{"surface water", "groundwater"},
				Keywords:       []string{"river", "aquifer", "flooding"},
			},
			{
				Name:           "agronomy",
				Subdisciplines: []string{"soil science", "crop management"},
				Keywords:       []string{"crops", "yield", "fertilizer"},
			},
		},
	}
}

func modelWithTerms(terms ...[]string) *domain.TopicModelResult {
	topics := make([]domain.Topic, len(terms))
	for i, topicTerms := range terms {
		tw := make([]domain.TermWeight, len(topicTerms))
		for j, term := range topicTerms {
			tw[j] = domain.TermWeight{Term: term, Weight: float64(len(topicTerms) - j)}
		}
		topics[i] = domain.Topic{ID: i, Terms: tw}
	}
	return &domain.TopicModelResult{Topics: topics}
}

func TestMapper_MapTopics(t *testing.T) {
	mapper := New(4)

	t.Run("scores keyword overlap", func(t *testing.T) {
		model := modelWithTerms([]string{"river", "flooding", "levee", "repairs"})

		results, err := mapper.MapTopics(context.Background(), model, testBackbone(), nil)
		require.NoError(t, err)
		require.Len(t, results, 1)

		require.Len(t, results[0].Backbone, 1)
		match := results[0].Backbone[0]
		assert.Equal(t, "hydrology", match.Domain)
		assert.InDelta(t, 0.5, match.Score, 1e-9)
		assert.False(t, match.Manual)
	})

	t.Run("equal scores keep both domains ordered by name", func(t *testing.T) {
		model := modelWithTerms([]string{"river", "crops", "town", "hall"})

		results, err := mapper.MapTopics(context.Background(), model, testBackbone(), nil)
		require.NoError(t, err)
		require.Len(t, results[0].Backbone, 2)
		assert.Equal(t, "agronomy", results[0].Backbone[0].Domain)
		assert.Equal(t, "hydrology", results[0].Backbone[1].Domain)
		assert.Equal(t, results[0].Backbone[0].Score, results[0].Backbone[1].Score)
	})

	t.Run("no overlap yields no matches", func(t *testing.T) {
		model := modelWithTerms([]string{"budget", "meeting", "agenda", "vote"})

		results, err := mapper.MapTopics(context.Background(), model, testBackbone(), nil)
		require.NoError(t, err)
		assert.Empty(t, results[0].Backbone)
		assert.Equal(t, []string{"budget", "meeting", "agenda", "vote"}, results[0].TopTerms)
	})

	t.Run("subdiscipline contribution recorded", func(t *testing.T) {
		model := modelWithTerms([]string{"groundwater", "wells", "nitrate", "contamination"})

		results, err := mapper.MapTopics(context.Background(), model, testBackbone(), nil)
		require.NoError(t, err)
		require.Len(t, results[0].Backbone, 1)
		assert.Equal(t, "hydrology", results[0].Backbone[0].Domain)
		assert.Equal(t, []string{"groundwater"}, results[0].Backbone[0].Subdisciplines)
	})

	t.Run("override forces manual assignment", func(t *testing.T) {
		model := modelWithTerms([]string{"river", "flooding", "levee", "repairs"})
		overrides := map[int]string{0: "agronomy"}

		results, err := mapper.MapTopics(context.Background(), model, testBackbone(), overrides)
		require.NoError(t, err)
		require.Len(t, results[0].Backbone, 1)
		assert.Equal(t, "agronomy", results[0].Backbone[0].Domain)
		assert.True(t, results[0].Backbone[0].Manual)
	})

	t.Run("override with unknown domain", func(t *testing.T) {
		model := modelWithTerms([]string{"river"})
		overrides := map[int]string{0: "astrology"}

		_, err := mapper.MapTopics(context.Background(), model, testBackbone(), overrides)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("invalid backbone", func(t *testing.T) {
		model := modelWithTerms([]string{"river"})
		_, err := mapper.MapTopics(context.Background(), model, &domain.ScienceBackbone{}, nil)
		assert.True(t, errors.Is(err, domain.ErrMalformedVocabulary))
	})
}
