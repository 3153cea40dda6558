package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driving"
	"github.com/meridian-sci/svomap-cli/internal/logger"
)

// Ensure PipelineOrchestrator implements the interface.
var _ driving.PipelineService = (*PipelineOrchestrator)(nil)

// PipelineOrchestrator coordinates a full narrative-to-variable run.
type PipelineOrchestrator struct {
	connectors []driven.Connector
	loaders    driven.LoaderRegistry
	textproc   driven.TextPipeline
	modeler    driven.TopicModeler
	embedder   driven.Embedder
	mapper     driven.BackboneMapper
	extractor  driven.ComponentExtractor
	linker     driven.SVOLinker
	vocab      driven.VocabStore
	exporters  []driven.Exporter

	// Status tracking
	mu     sync.RWMutex
	status driving.RunStatus
}

// NewPipelineOrchestrator creates a new pipeline orchestrator.
// The embedder is optional; when nil the scatter chart is skipped.
func NewPipelineOrchestrator(
	connectors []driven.Connector,
	loaders driven.LoaderRegistry,
	textproc driven.TextPipeline,
	modeler driven.TopicModeler,
	embedder driven.Embedder,
	mapper driven.BackboneMapper,
	extractor driven.ComponentExtractor,
	linker driven.SVOLinker,
	vocab driven.VocabStore,
	exporters []driven.Exporter,
) *PipelineOrchestrator {
	return &PipelineOrchestrator{
		connectors: connectors,
		loaders:    loaders,
		textproc:   textproc,
		modeler:    modeler,
		embedder:   embedder,
		mapper:     mapper,
		extractor:  extractor,
		linker:     linker,
		vocab:      vocab,
		exporters:  exporters,
	}
}

// Run executes the full pipeline. One run at a time.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (o *PipelineOrchestrator) Run(ctx context.Context, opts driving.RunOptions) (*domain.RunResult, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if err := o.begin(); err != nil {
		return nil, err
	}
	defer o.finish()

	// 1. Load and validate the vocabulary files.
	o.setStage("vocabulary")
	backbone, err := o.vocab.LoadBackbone(opts.BackbonePath)
	if err != nil {
		return nil, err
	}
	dict, err := o.vocab.LoadSVODictionary(opts.SVOPath)
	if err != nil {
		return nil, err
	}

	// 2. Fetch and load the corpus.
	o.setStage("loading")
	docs, skipped, err := o.loadCorpus(ctx, opts.Params.Workers)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded %d documents (%d skipped)", len(docs), skipped)

	// 3. Preprocess each document into a cleaned word bag.
	o.setStage("preprocessing")
	corpus, bags, err := o.preprocess(ctx, docs)
	if err != nil {
		return nil, err
	}
	if corpus.IsEmpty() {
		return nil, domain.ErrEmptyCorpus
	}

	// 4. Fit the topic model.
	o.setStage("modelling")
	model, err := o.modeler.Fit(ctx, bags, opts.Params)
	if err != nil {
		return nil, err
	}

	// 5. Project documents to 2-D for the scatter chart.
	// Embedding failure is not fatal; the chart is just skipped.
	var coords [][2]float64
	if o.embedder != nil {
		o.setStage("embedding")
		coords, err = o.embedder.Embed(ctx, model)
		if err != nil {
			logger.Warn("embedding failed, skipping scatter chart: %v", err)
			coords = nil
		}
	}

	// 6. Map topics onto the science backbone.
	o.setStage("mapping")
	mappings, err := o.mapper.MapTopics(ctx, model, backbone, opts.TopicOverrides)
	if err != nil {
		return nil, err
	}

	// 7. Link topic terms to SVO dictionary entries.
	o.setStage("linking")
	links, err := o.linkMappings(ctx, mappings, dict)
	if err != nil {
		return nil, err
	}

	// 8. Extract decision components from the raw narratives.
	o.setStage("extracting")
	components, err := o.extractor.Extract(ctx, corpus)
	if err != nil {
		return nil, err
	}

	result := &domain.RunResult{
		Params:      opts.Params,
		Corpus:      corpus,
		Model:       model,
		Mappings:    mappings,
		Components:  components,
		Links:       links,
		Coordinates: coords,
		GeneratedAt: time.Now(),
	}

	// 9. Export the artifacts.
	if !opts.SkipExport {
		o.setStage("exporting")
		if err := o.export(ctx, result, opts.OutputDir); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Status returns progress of the active run, or an idle status.
func (o *PipelineOrchestrator) Status() driving.RunStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// begin claims the single run slot.
func (o *PipelineOrchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status.Running {
		return domain.ErrRunInProgress
	}
	o.status = driving.RunStatus{Running: true}
	return nil
}

func (o *PipelineOrchestrator) finish() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.Running = false
	o.status.Stage = ""
}

func (o *PipelineOrchestrator) setStage(stage string) {
	o.mu.Lock()
	o.status.Stage = stage
	o.mu.Unlock()
	logger.Stage(stage)
}

func (o *PipelineOrchestrator) addLoaded(n int) {
	o.mu.Lock()
	o.status.DocumentsLoaded += n
	o.mu.Unlock()
}

func (o *PipelineOrchestrator) addSkipped(n int) {
	o.mu.Lock()
	o.status.DocumentsSkipped += n
	o.mu.Unlock()
}

// loadCorpus streams raw documents from every connector and loads them
// through a bounded worker pool. Documents no loader accepts, and
// documents that fail to load, are counted and skipped.
func (o *PipelineOrchestrator) loadCorpus(
	ctx context.Context, workers int,
) ([]domain.Document, int, error) {
	var (
		mu      sync.Mutex
		docs    []domain.Document
		skipped int
	)

	for _, connector := range o.connectors {
		if err := connector.Validate(ctx); err != nil {
			return nil, 0, fmt.Errorf("connector %s: %w", connector.Type(), err)
		}

		rawChan, errsChan := connector.Fetch(ctx)

		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(workers)

		for raw := range rawChan {
			raw := raw
			group.Go(func() error {
				result, err := o.loaders.Load(groupCtx, &raw)
				if err != nil {
					if errors.Is(err, domain.ErrUnsupportedFormat) ||
						errors.Is(err, domain.ErrNotImplemented) {
						logger.Debug("skipping %s: %v", raw.URI, err)
						mu.Lock()
						skipped++
						mu.Unlock()
						o.addSkipped(1)
						return nil
					}
					return fmt.Errorf("load %s: %w", raw.URI, err)
				}
				mu.Lock()
				docs = append(docs, result.Document)
				mu.Unlock()
				o.addLoaded(1)
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return nil, 0, err
		}
		for err := range errsChan {
			if err != nil {
				return nil, 0, fmt.Errorf("fetch from %s: %w", connector.Type(), err)
			}
		}
	}

	// Parallel loading reorders documents; sort by URI so corpus order,
	// and with it the seeded model output, is reproducible.
	sort.Slice(docs, func(i, j int) bool { return docs[i].URI < docs[j].URI })
	return docs, skipped, nil
}

// preprocess runs the text pipeline per document and joins each
// document's surviving bags into one modelling unit. Documents whose
// text cleans down to nothing are dropped from the corpus.
func (o *PipelineOrchestrator) preprocess(
	ctx context.Context, docs []domain.Document,
) (*domain.Corpus, []domain.Bag, error) {
	kept := make([]domain.Document, 0, len(docs))
	bags := make([]domain.Bag, 0, len(docs))

	for _, doc := range docs {
		doc := doc
		docBags, err := o.textproc.Process(ctx, &doc)
		if err != nil {
			return nil, nil, fmt.Errorf("preprocess %s: %w", doc.URI, err)
		}

		texts := make([]string, 0, len(docBags))
		for _, bag := range docBags {
			texts = append(texts, bag.Text)
		}
		joined := strings.Join(texts, " ")
		if strings.TrimSpace(joined) == "" {
			logger.Debug("document %s has no usable text, dropping", doc.URI)
			o.addSkipped(1)
			continue
		}

		bags = append(bags, domain.Bag{
			DocumentID: doc.ID,
			Position:   len(kept),
			Text:       joined,
		})
		kept = append(kept, doc)
	}

	return domain.NewCorpus(kept), bags, nil
}

// linkMappings resolves each topic's top terms against the dictionary,
// fills the per-topic links and returns the deduplicated union.
func (o *PipelineOrchestrator) linkMappings(
	ctx context.Context, mappings []domain.MappingResult, dict *domain.SVODictionary,
) ([]domain.SVOLink, error) {
	seen := make(map[string]domain.SVOLink)

	for i := range mappings {
		links, err := o.linker.Link(ctx, mappings[i].TopTerms, dict)
		if err != nil {
			return nil, fmt.Errorf("link topic %d: %w", mappings[i].TopicID, err)
		}
		mappings[i].SVO = links

		for _, link := range links {
			key := link.Term + "\x00" + link.Variable
			if prev, ok := seen[key]; !ok || link.Score > prev.Score {
				seen[key] = link
			}
		}
	}

	union := make([]domain.SVOLink, 0, len(seen))
	for _, link := range seen {
		union = append(union, link)
	}
	sort.Slice(union, func(i, j int) bool {
		if union[i].Score != union[j].Score {
			return union[i].Score > union[j].Score
		}
		if union[i].Term != union[j].Term {
			return union[i].Term < union[j].Term
		}
		return union[i].Variable < union[j].Variable
	})
	return union, nil
}

// export writes every artifact into the output directory.
func (o *PipelineOrchestrator) export(
	ctx context.Context, result *domain.RunResult, dir string,
) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, exporter := range o.exporters {
		if err := exporter.Export(ctx, result, dir); err != nil {
			return fmt.Errorf("export %s: %w", exporter.Name(), err)
		}
		logger.Info("wrote %s artifacts", exporter.Name())
	}
	return nil
}
