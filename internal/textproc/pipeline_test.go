package textproc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

func TestDefaultPipeline(t *testing.T) {
	pipeline := DefaultPipeline()
	require.Equal(t, 3, pipeline.Len())

	doc := &domain.Document{
		ID:      "doc-1",
		Content: "The river floods every spring! Farmers lose topsoil; the county pays for dredging.",
	}

	bags, err := pipeline.Process(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, bags, 3)

	assert.Equal(t, "river floods every spring", bags[0].Text)
	assert.Equal(t, "farmers lose topsoil", bags[1].Text)
	assert.Equal(t, "county pays dredging", bags[2].Text)
	for i, bag := range bags {
		assert.Equal(t, "doc-1", bag.DocumentID)
		assert.Equal(t, i, bag.Position)
	}
}

func TestPipeline_NilDocument(t *testing.T) {
	pipeline := DefaultPipeline()
	_, err := pipeline.Process(context.Background(), nil)
	assert.Error(t, err)
}

func TestDefaultPipeline_ExtraStopWords(t *testing.T) {
	pipeline := DefaultPipeline("river")

	doc := &domain.Document{ID: "doc-1", Content: "The river floods every spring."}
	bags, err := pipeline.Process(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, bags, 1)
	assert.Equal(t, "floods every spring", bags[0].Text)
}

func TestRegistry_Build(t *testing.T) {
	reg := NewRegistry()
	RegisterDefaults(reg)

	assert.ElementsMatch(t, []string{"bagger", "cleaner", "stopwords"}, reg.Names())

	proc, err := reg.Build("stopwords", map[string]any{"min_token_length": 5})
	require.NoError(t, err)
	assert.Equal(t, "stopwords", proc.Name())

	_, err = reg.Build("stemmer", nil)
	assert.Error(t, err)
}
