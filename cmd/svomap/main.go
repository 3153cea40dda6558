// Command svomap maps stakeholder narratives to scientific variables.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meridian-sci/svomap-cli/cgo/tesseract"
	configfile "github.com/meridian-sci/svomap-cli/internal/adapters/driven/config/file"
	"github.com/meridian-sci/svomap-cli/internal/adapters/driving/cli"
	"github.com/meridian-sci/svomap-cli/internal/backbone"
	"github.com/meridian-sci/svomap-cli/internal/connectors/filesystem"
	"github.com/meridian-sci/svomap-cli/internal/connectors/github"
	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/core/services"
	"github.com/meridian-sci/svomap-cli/internal/extract"
	"github.com/meridian-sci/svomap-cli/internal/loaders"
	"github.com/meridian-sci/svomap-cli/internal/loaders/docx"
	"github.com/meridian-sci/svomap-cli/internal/loaders/html"
	"github.com/meridian-sci/svomap-cli/internal/loaders/image"
	"github.com/meridian-sci/svomap-cli/internal/loaders/jsondoc"
	"github.com/meridian-sci/svomap-cli/internal/loaders/markdown"
	"github.com/meridian-sci/svomap-cli/internal/loaders/plaintext"
	"github.com/meridian-sci/svomap-cli/internal/logger"
	"github.com/meridian-sci/svomap-cli/internal/report"
	"github.com/meridian-sci/svomap-cli/internal/svo"
	"github.com/meridian-sci/svomap-cli/internal/textproc"
	"github.com/meridian-sci/svomap-cli/internal/topicmodel"
	"github.com/meridian-sci/svomap-cli/internal/vocab"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetInitializer(buildServices)
	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the driven adapters behind the driving services.
func buildServices(configDir string) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}

	vocabStore := vocab.NewStore()

	return &cli.Services{
		NewRunner: func(cfg cli.SourceConfig, params domain.PipelineParams) (*cli.Runner, error) {
			return buildRunner(vocabStore, cfg, params)
		},
		Settings: services.NewSettingsService(configStore),
		Vocab:    services.NewVocabChecker(vocabStore),
	}, nil
}

// buildRunner assembles the pipeline for one invocation's sources.
func buildRunner(
	vocabStore driven.VocabStore, cfg cli.SourceConfig, params domain.PipelineParams,
) (*cli.Runner, error) {
	var (
		connectors []driven.Connector
		watch      func(ctx context.Context) (<-chan struct{}, error)
	)
	if cfg.InputDir != "" {
		fsConn := filesystem.New(filesystem.Config{
			Root:    cfg.InputDir,
			Include: cfg.Include,
			Exclude: cfg.Exclude,
		})
		connectors = append(connectors, fsConn)
		watch = fsConn.Watch
	}
	if cfg.GitHubRepo != "" {
		connectors = append(connectors, github.New(github.Config{
			Repo:  cfg.GitHubRepo,
			Token: cfg.GitHubToken,
		}))
	}

	// OCR is best effort: without an engine the image loader skips
	// scanned documents instead of failing the run.
	ocrEngine, err := tesseract.New("")
	if err != nil {
		logger.Warn("OCR unavailable, image documents will be skipped: %v", err)
		ocrEngine = nil
	}

	registry := loaders.NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(jsondoc.New())
	registry.Register(markdown.New())
	registry.Register(html.New())
	registry.Register(docx.New())
	if ocrEngine != nil {
		registry.Register(image.New(ocrEngine))
	}

	orchestrator := services.NewPipelineOrchestrator(
		connectors,
		registry,
		textproc.DefaultPipeline(),
		topicmodel.NewLDA(),
		topicmodel.NewTSNEEmbedder(),
		backbone.New(params.TopTermCount),
		extract.New(),
		svo.New(),
		vocabStore,
		[]driven.Exporter{
			report.NewCSVExporter(),
			report.NewChartExporter(),
			report.NewSummaryExporter(),
			report.NewSQLiteExporter(),
		},
	)

	closeAll := func() error {
		var firstErr error
		for _, connector := range connectors {
			if cerr := connector.Close(); cerr != nil && firstErr == nil {
				firstErr = cerr
			}
		}
		if ocrEngine != nil {
			if cerr := ocrEngine.Close(); cerr != nil && firstErr == nil {
				firstErr = cerr
			}
		}
		return firstErr
	}

	return &cli.Runner{
		Pipeline: orchestrator,
		Watch:    watch,
		Close:    closeAll,
	}, nil
}
