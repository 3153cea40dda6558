package svo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func testDictionary() *domain.SVODictionary {
	return domain.NewSVODictionary([]domain.SVOEntry{
		{
			Name:         "streamflow",
			StandardName: "channel_water__volume_flow_rate",
			Units:        "m3 s-1",
			Domain:       "hydrology",
			Keywords:     []string{"discharge", "flow rate", "gauge"},
		},
		{
			Name:         "nitrate_concentration",
			StandardName: "soil_water_nitrate__mass_concentration",
			Units:        "mg L-1",
			Domain:       "hydrology",
			Keywords:     []string{"nitrate", "nitrogen pollution"},
		},
	})
}

func TestLinker_Link(t *testing.T) {
	linker := New()

	t.Run("exact name match", func(t *testing.T) {
		links, err := linker.Link(context.Background(), []string{"streamflow"}, testDictionary())
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "streamflow", links[0].Variable)
		assert.Equal(t, 1.0, links[0].Score)
	})

	t.Run("keyword match", func(t *testing.T) {
		links, err := linker.Link(context.Background(), []string{"discharge"}, testDictionary())
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "streamflow", links[0].Variable)
		assert.Equal(t, 0.8, links[0].Score)
	})

	t.Run("word of multi-word keyword", func(t *testing.T) {
		links, err := linker.Link(context.Background(), []string{"nitrogen"}, testDictionary())
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "nitrate_concentration", links[0].Variable)
	})

	t.Run("no match", func(t *testing.T) {
		links, err := linker.Link(context.Background(), []string{"zoning"}, testDictionary())
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("every link references a dictionary key", func(t *testing.T) {
		dict := testDictionary()
		terms := []string{"streamflow", "nitrate", "discharge", "zoning", "water"}

		links, err := linker.Link(context.Background(), terms, dict)
		require.NoError(t, err)
		for _, link := range links {
			assert.True(t, dict.Has(link.Variable), "variable %q not in dictionary", link.Variable)
		}
	})

	t.Run("ordering is stable", func(t *testing.T) {
		terms := []string{"discharge", "nitrate", "gauge"}
		first, err := linker.Link(context.Background(), terms, testDictionary())
		require.NoError(t, err)
		second, err := linker.Link(context.Background(), terms, testDictionary())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty dictionary", func(t *testing.T) {
		_, err := linker.Link(context.Background(), []string{"x"}, domain.NewSVODictionary(nil))
		assert.True(t, errors.Is(err, domain.ErrMalformedVocabulary))
	})

	t.Run("nil dictionary", func(t *testing.T) {
		_, err := linker.Link(context.Background(), []string{"x"}, nil)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}
