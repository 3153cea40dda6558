package domain

import "fmt"

// Default pipeline parameters.
const (
	// DefaultTopicCount is the number of LDA topics fitted when the
	// user does not override it.
	DefaultTopicCount = 8

	// DefaultVocabularyCap bounds the vectoriser vocabulary.
	DefaultVocabularyCap = 5000

	// DefaultIterations is the LDA iteration count.
	DefaultIterations = 100

	// DefaultWorkers is the loader worker-pool size.
	DefaultWorkers = 4

	// DefaultTopTermCount is how many top terms per topic feed the
	// backbone mapper and reports.
	DefaultTopTermCount = 10
)

// PipelineParams are the scalar knobs of a run.
// They come from flags or the config file and are fixed once the run
// starts.
type PipelineParams struct {
	// TopicCount is the fixed K for the topic model.
	TopicCount int

	// VocabularyCap bounds the number of distinct terms kept for
	// vectorisation. Terms beyond the cap (by corpus frequency) are
	// treated as stop words.
	VocabularyCap int

	// Iterations is the LDA fitting iteration count.
	Iterations int

	// Seed makes the run reproducible. Zero means unseeded.
	Seed int64

	// Workers bounds the loader worker pool.
	Workers int

	// TopTermCount is how many top terms per topic are reported and
	// matched against the backbone.
	TopTermCount int
}

// DefaultPipelineParams returns the documented defaults.
func DefaultPipelineParams() PipelineParams {
	return PipelineParams{
		TopicCount:    DefaultTopicCount,
		VocabularyCap: DefaultVocabularyCap,
		Iterations:    DefaultIterations,
		Workers:       DefaultWorkers,
		TopTermCount:  DefaultTopTermCount,
	}
}

// Validate rejects parameter combinations the pipeline cannot run with.
func (p PipelineParams) Validate() error {
	if p.TopicCount < 1 {
		return fmt.Errorf("%w: topic count must be at least 1", ErrInvalidInput)
	}
	if p.VocabularyCap < p.TopicCount {
		return fmt.Errorf("%w: vocabulary cap %d below topic count %d", ErrInvalidInput, p.VocabularyCap, p.TopicCount)
	}
	if p.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1", ErrInvalidInput)
	}
	if p.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidInput)
	}
	if p.TopTermCount < 1 {
		return fmt.Errorf("%w: top term count must be at least 1", ErrInvalidInput)
	}
	return nil
}
