package topicmodel

import (
	"context"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure TSNEEmbedder implements the interface.
var _ driven.Embedder = (*TSNEEmbedder)(nil)

// t-SNE hyperparameters, tuned for corpora of tens to a few hundred
// documents.
const (
	tsneLearningRate = 100
	tsneMaxIter      = 150
)

// minEmbedDocs is the document count below which t-SNE degenerates;
// smaller corpora fall back to a direct topic-weight projection.
const minEmbedDocs = 5

// TSNEEmbedder projects per-document topic weights into two dimensions
// with t-SNE.
type TSNEEmbedder struct{}

// NewTSNEEmbedder creates a new t-SNE embedder.
func NewTSNEEmbedder() *TSNEEmbedder {
	return &TSNEEmbedder{}
}

// Embed returns one (x, y) coordinate per document.
func (e *TSNEEmbedder) Embed(
	ctx context.Context, model *domain.TopicModelResult,
) ([][2]float64, error) {
	if model == nil || len(model.Topics) == 0 {
		return nil, domain.ErrInvalidInput
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	topicCount := len(model.Topics)
	docCount := len(model.Topics[0].DocumentWeights)

	if docCount < minEmbedDocs || topicCount < 2 {
		return directProjection(model, docCount), nil
	}

	// Rows are documents, columns are topic weights.
	data := make([]float64, 0, docCount*topicCount)
	for doc := 0; doc < docCount; doc++ {
		for _, topic := range model.Topics {
			data = append(data, topic.DocumentWeights[doc])
		}
	}
	wv := mat.NewDense(docCount, topicCount, data)

	perplexity := float64(docCount-1) / 3
	if perplexity > 150 {
		perplexity = 150
	}

	t := tsne.NewTSNE(2, perplexity, tsneLearningRate, tsneMaxIter, false)
	t.EmbedData(wv, nil)

	coords := make([][2]float64, docCount)
	for doc := 0; doc < docCount; doc++ {
		coords[doc] = [2]float64{t.Y.At(doc, 0), t.Y.At(doc, 1)}
	}
	return coords, nil
}

// directProjection uses the first two topic weights as coordinates.
func directProjection(model *domain.TopicModelResult, docCount int) [][2]float64 {
	coords := make([][2]float64, docCount)
	for doc := 0; doc < docCount; doc++ {
		coords[doc][0] = model.Topics[0].DocumentWeights[doc]
		if len(model.Topics) > 1 {
			coords[doc][1] = model.Topics[1].DocumentWeights[doc]
		}
	}
	return coords
}
