package driving

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// RunOptions configure one pipeline invocation.
type RunOptions struct {
	// BackbonePath is the science backbone YAML file.
	BackbonePath string

	// SVOPath is the SVO dictionary YAML file.
	SVOPath string

	// OutputDir receives the exported artifacts.
	OutputDir string

	// Params are the scalar pipeline knobs.
	Params domain.PipelineParams

	// TopicOverrides force topic-to-domain assignments
	// (topic ID -> backbone domain name).
	TopicOverrides map[int]string

	// SkipExport stops the run after mapping, leaving artifacts
	// unwritten. Used by the inspection commands.
	SkipExport bool
}

// RunStatus tracks progress of the active run.
type RunStatus struct {
	// Stage names the pipeline stage currently executing.
	Stage string

	// DocumentsLoaded counts documents admitted to the corpus.
	DocumentsLoaded int

	// DocumentsSkipped counts documents no loader accepted or that
	// failed to load.
	DocumentsSkipped int

	// Running reports whether a run is active.
	Running bool
}

// PipelineService executes the narrative-to-variable mapping pipeline.
type PipelineService interface {
	// Run executes the full pipeline: fetch, load, preprocess, model,
	// map, extract, link, export. One run at a time.
	Run(ctx context.Context, opts RunOptions) (*domain.RunResult, error)

	// Status returns progress of the active run, or an idle status.
	Status() RunStatus
}

// VocabReport summarises a vocabulary validation pass.
type VocabReport struct {
	// Domains is the backbone domain count.
	Domains int

	// Subdisciplines is the total subdiscipline count.
	Subdisciplines int

	// Variables is the SVO entry count.
	Variables int

	// Warnings lists non-fatal findings (e.g., SVO entries whose
	// domain is not in the backbone).
	Warnings []string
}

// VocabService validates vocabulary configuration files.
type VocabService interface {
	// Check loads and validates both vocabulary files.
	Check(backbonePath, svoPath string) (*VocabReport, error)
}
