package domain

import "time"

// DomainMatch links a topic to one science-backbone domain with the
// keyword-overlap score that produced the match.
type DomainMatch struct {
	// Domain is the matched backbone domain name.
	Domain string

	// Subdisciplines are the subdiscipline names whose terms
	// contributed to the match.
	Subdisciplines []string

	// Score is the overlap score in [0, 1].
	Score float64

	// Manual marks an assignment forced by configuration override
	// rather than keyword overlap.
	Manual bool
}

// SVOLink connects an extracted term to one SVO dictionary entry.
type SVOLink struct {
	// Term is the matched narrative term.
	Term string

	// Variable is the SVO entry name the term resolved to.
	// Always a key present in the supplied dictionary.
	Variable string

	// Score is the match strength in [0, 1].
	Score float64
}

// MappingResult links one discovered topic to zero-or-more backbone
// domains and zero-or-more SVO entries. This is the terminal artifact
// of the pipeline, persisted by the exporters.
type MappingResult struct {
	// TopicID is the topic the mapping describes.
	TopicID int

	// TopTerms are the topic terms the mapping was computed from.
	TopTerms []string

	// Backbone holds the matched domains, ordered by descending score
	// then domain name.
	Backbone []DomainMatch

	// SVO holds the linked variables, ordered by descending score.
	SVO []SVOLink
}

// RunResult bundles everything one pipeline run produced.
// Held in memory until the exporters write it out; discarded after.
type RunResult struct {
	// Params echoes the parameters the run used.
	Params PipelineParams

	// Corpus is the loaded document collection.
	Corpus *Corpus

	// Model is the fitted topic model output.
	Model *TopicModelResult

	// Mappings are the per-topic mapping results.
	Mappings []MappingResult

	// Components are the extracted decision components, deduplicated
	// on (document, span, category).
	Components []DecisionComponent

	// Links are the term-to-variable links found across the corpus.
	Links []SVOLink

	// Coordinates are optional 2-D embedding coordinates per document,
	// produced for the scatter chart. Nil when embedding is skipped.
	Coordinates [][2]float64

	// GeneratedAt is when the run finished.
	GeneratedAt time.Time
}
