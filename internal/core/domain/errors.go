package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available in
	// this build (e.g., OCR without cgo).
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedFormat indicates no loader accepts the document's
	// MIME type.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEmptyCorpus indicates the loader produced no usable text.
	// The run aborts before vectorisation.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrMalformedVocabulary indicates the backbone or SVO dictionary
	// file failed validation.
	ErrMalformedVocabulary = errors.New("malformed vocabulary")

	// ErrDegenerateVocabulary indicates vectorisation produced too few
	// distinct terms to model the requested topic count.
	ErrDegenerateVocabulary = errors.New("degenerate vocabulary")

	// ErrModelFailed indicates the topic model did not fit.
	ErrModelFailed = errors.New("topic model failed")

	// ErrRunInProgress indicates a pipeline run is already active.
	ErrRunInProgress = errors.New("run in progress")

	// Connector Errors.

	// ErrAuthRequired indicates the connector requires a token but none
	// is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrConnectorValidation indicates connector validation failed.
	ErrConnectorValidation = errors.New("connector validation failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
