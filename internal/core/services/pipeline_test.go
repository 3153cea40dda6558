package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driving"
)

// --- fakes ---

type fakeConnector struct {
	docs        []domain.RawDocument
	validateErr error
}

func (f *fakeConnector) Type() string { return "fake" }
func (f *fakeConnector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{}
}
func (f *fakeConnector) Validate(context.Context) error { return f.validateErr }
func (f *fakeConnector) Close() error                   { return nil }
func (f *fakeConnector) Watch(context.Context) (<-chan struct{}, error) {
	return nil, domain.ErrNotImplemented
}

func (f *fakeConnector) Fetch(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docsChan := make(chan domain.RawDocument)
	errsChan := make(chan error, 1)
	go func() {
		defer close(docsChan)
		defer close(errsChan)
		for _, doc := range f.docs {
			select {
			case <-ctx.Done():
				return
			case docsChan <- doc:
			}
		}
	}()
	return docsChan, errsChan
}

type fakeLoaderRegistry struct{}

func (f *fakeLoaderRegistry) Register(driven.Loader)    {}
func (f *fakeLoaderRegistry) SupportedMIMETypes() []string { return []string{"text/plain"} }

func (f *fakeLoaderRegistry) Load(_ context.Context, raw *domain.RawDocument) (*driven.LoadResult, error) {
	if raw.MIMEType != "text/plain" {
		return nil, domain.ErrUnsupportedFormat
	}
	return &driven.LoadResult{Document: domain.Document{
		ID:      "doc-" + raw.URI,
		Source:  raw.Source,
		URI:     raw.URI,
		Title:   raw.URI,
		Content: string(raw.Content),
		Format:  "text",
	}}, nil
}

type fakeTextPipeline struct{}

func (f *fakeTextPipeline) Process(_ context.Context, doc *domain.Document) ([]domain.Bag, error) {
	text := strings.ToLower(strings.TrimSpace(doc.Content))
	if text == "" {
		return nil, nil
	}
	return []domain.Bag{{DocumentID: doc.ID, Position: 0, Text: text}}, nil
}

type fakeModeler struct {
	gotBags []domain.Bag
}

func (f *fakeModeler) Fit(_ context.Context, bags []domain.Bag, params domain.PipelineParams) (*domain.TopicModelResult, error) {
	f.gotBags = bags
	if len(bags) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	weights := make([]float64, len(bags))
	dominant := make([]int, len(bags))
	for i := range bags {
		weights[i] = 1
	}
	return &domain.TopicModelResult{
		Topics: []domain.Topic{{
			ID:              0,
			Terms:           []domain.TermWeight{{Term: "river", Weight: 1}},
			DocumentWeights: weights,
		}},
		Vocabulary:     []string{"river"},
		DominantTopics: dominant,
		TopicShares:    []float64{1},
	}, nil
}

type fakeEmbedder struct{ err error }

func (f *fakeEmbedder) Embed(_ context.Context, model *domain.TopicModelResult) ([][2]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	coords := make([][2]float64, len(model.Topics[0].DocumentWeights))
	return coords, nil
}

type fakeMapper struct{}

func (f *fakeMapper) MapTopics(
	_ context.Context, model *domain.TopicModelResult, _ *domain.ScienceBackbone, overrides map[int]string,
) ([]domain.MappingResult, error) {
	results := make([]domain.MappingResult, len(model.Topics))
	for i, topic := range model.Topics {
		results[i] = domain.MappingResult{
			TopicID:  topic.ID,
			TopTerms: []string{"river"},
			Backbone: []domain.DomainMatch{{Domain: "hydrology", Score: 0.5}},
		}
		if name, ok := overrides[topic.ID]; ok {
			results[i].Backbone = []domain.DomainMatch{{Domain: name, Manual: true}}
		}
	}
	return results, nil
}

type fakeExtractor struct{}

func (f *fakeExtractor) Extract(_ context.Context, corpus *domain.Corpus) ([]domain.DecisionComponent, error) {
	var components []domain.DecisionComponent
	for _, doc := range corpus.Documents() {
		if strings.Contains(doc.Content, "goal") {
			components = append(components, domain.DecisionComponent{
				ID: "c-" + doc.ID, DocumentID: doc.ID,
				Category: domain.CategoryGoal, Text: doc.Content,
			})
		}
	}
	return components, nil
}

type fakeLinker struct{}

func (f *fakeLinker) Link(_ context.Context, terms []string, dict *domain.SVODictionary) ([]domain.SVOLink, error) {
	var links []domain.SVOLink
	for _, term := range terms {
		if dict.Has(term) {
			links = append(links, domain.SVOLink{Term: term, Variable: term, Score: 1})
		}
	}
	return links, nil
}

type fakeVocabStore struct{}

func (f *fakeVocabStore) LoadBackbone(string) (*domain.ScienceBackbone, error) {
	return &domain.ScienceBackbone{Domains: []domain.BackboneDomain{
		{Name: "hydrology", Keywords: []string{"river"}},
	}}, nil
}

func (f *fakeVocabStore) LoadSVODictionary(string) (*domain.SVODictionary, error) {
	return domain.NewSVODictionary([]domain.SVOEntry{{
		Name: "river", StandardName: "channel_water", Keywords: []string{"river"},
	}}), nil
}

type recordingExporter struct {
	name     string
	exported bool
	dir      string
}

func (r *recordingExporter) Name() string { return r.name }
func (r *recordingExporter) Export(_ context.Context, _ *domain.RunResult, dir string) error {
	r.exported = true
	r.dir = dir
	return nil
}

// --- tests ---

func rawDoc(uri, content string) domain.RawDocument {
	return domain.RawDocument{
		Source: "fake", URI: uri, MIMEType: "text/plain", Content: []byte(content),
	}
}

func newTestOrchestrator(connector driven.Connector, exporters ...driven.Exporter) (*PipelineOrchestrator, *fakeModeler) {
	modeler := &fakeModeler{}
	orch := NewPipelineOrchestrator(
		[]driven.Connector{connector},
		&fakeLoaderRegistry{},
		&fakeTextPipeline{},
		modeler,
		&fakeEmbedder{},
		&fakeMapper{},
		&fakeExtractor{},
		&fakeLinker{},
		&fakeVocabStore{},
		exporters,
	)
	return orch, modeler
}

func testOptions(t *testing.T) driving.RunOptions {
	t.Helper()
	params := domain.DefaultPipelineParams()
	params.TopicCount = 1
	return driving.RunOptions{
		BackbonePath: "backbone.yaml",
		SVOPath:      "svo.yaml",
		OutputDir:    filepath.Join(t.TempDir(), "out"),
		Params:       params,
	}
}

func TestPipelineOrchestrator_Run(t *testing.T) {
	t.Run("full run", func(t *testing.T) {
		connector := &fakeConnector{docs: []domain.RawDocument{
			rawDoc("b.txt", "our goal is cleaner river water"),
			rawDoc("a.txt", "the river floods"),
		}}
		exporter := &recordingExporter{name: "rec"}
		orch, modeler := newTestOrchestrator(connector, exporter)

		opts := testOptions(t)
		result, err := orch.Run(context.Background(), opts)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Corpus.Len())
		// Corpus order is sorted by URI regardless of arrival order.
		assert.Equal(t, "a.txt", result.Corpus.Document(0).URI)
		assert.Equal(t, "b.txt", result.Corpus.Document(1).URI)
		require.Len(t, modeler.gotBags, 2)
		assert.Equal(t, 0, modeler.gotBags[0].Position)

		require.Len(t, result.Mappings, 1)
		assert.Equal(t, "hydrology", result.Mappings[0].Backbone[0].Domain)
		require.Len(t, result.Links, 1)
		assert.Equal(t, "river", result.Links[0].Variable)
		require.Len(t, result.Components, 1)
		assert.Len(t, result.Coordinates, 2)

		assert.True(t, exporter.exported)
		assert.Equal(t, opts.OutputDir, exporter.dir)
		_, err = os.Stat(opts.OutputDir)
		assert.NoError(t, err)
	})

	t.Run("unsupported documents are skipped", func(t *testing.T) {
		connector := &fakeConnector{docs: []domain.RawDocument{
			rawDoc("a.txt", "river water"),
			{Source: "fake", URI: "img.png", MIMEType: "image/png"},
		}}
		orch, _ := newTestOrchestrator(connector)

		opts := testOptions(t)
		opts.SkipExport = true
		result, err := orch.Run(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Corpus.Len())
	})

	t.Run("empty corpus", func(t *testing.T) {
		orch, _ := newTestOrchestrator(&fakeConnector{})
		opts := testOptions(t)
		opts.SkipExport = true

		_, err := orch.Run(context.Background(), opts)
		assert.True(t, errors.Is(err, domain.ErrEmptyCorpus))
	})

	t.Run("connector validation failure", func(t *testing.T) {
		connector := &fakeConnector{validateErr: domain.ErrConnectorValidation}
		orch, _ := newTestOrchestrator(connector)
		opts := testOptions(t)

		_, err := orch.Run(context.Background(), opts)
		assert.True(t, errors.Is(err, domain.ErrConnectorValidation))
	})

	t.Run("skip export leaves no artifacts", func(t *testing.T) {
		connector := &fakeConnector{docs: []domain.RawDocument{rawDoc("a.txt", "river")}}
		exporter := &recordingExporter{name: "rec"}
		orch, _ := newTestOrchestrator(connector, exporter)

		opts := testOptions(t)
		opts.SkipExport = true
		_, err := orch.Run(context.Background(), opts)
		require.NoError(t, err)
		assert.False(t, exporter.exported)
	})

	t.Run("invalid params rejected before work", func(t *testing.T) {
		orch, _ := newTestOrchestrator(&fakeConnector{})
		opts := testOptions(t)
		opts.Params.TopicCount = 0

		_, err := orch.Run(context.Background(), opts)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("status is idle after a run", func(t *testing.T) {
		connector := &fakeConnector{docs: []domain.RawDocument{rawDoc("a.txt", "river")}}
		orch, _ := newTestOrchestrator(connector)
		opts := testOptions(t)
		opts.SkipExport = true

		_, err := orch.Run(context.Background(), opts)
		require.NoError(t, err)

		status := orch.Status()
		assert.False(t, status.Running)
		assert.Equal(t, 1, status.DocumentsLoaded)
	})

	t.Run("embedding failure is not fatal", func(t *testing.T) {
		connector := &fakeConnector{docs: []domain.RawDocument{rawDoc("a.txt", "river")}}
		modeler := &fakeModeler{}
		orch := NewPipelineOrchestrator(
			[]driven.Connector{connector},
			&fakeLoaderRegistry{},
			&fakeTextPipeline{},
			modeler,
			&fakeEmbedder{err: errors.New("diverged")},
			&fakeMapper{},
			&fakeExtractor{},
			&fakeLinker{},
			&fakeVocabStore{},
			nil,
		)

		opts := testOptions(t)
		opts.SkipExport = true
		result, err := orch.Run(context.Background(), opts)
		require.NoError(t, err)
		assert.Nil(t, result.Coordinates)
	})
}
