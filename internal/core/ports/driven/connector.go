package driven

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// Connector fetches raw narrative documents from a source.
// Each source type (filesystem, github) implements this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Capabilities returns what this connector supports.
	Capabilities() ConnectorCapabilities

	// Validate checks the connector is properly configured.
	// For filesystem, this checks the path exists and is readable.
	// For API connectors, this makes a lightweight test call.
	Validate(ctx context.Context) error

	// Fetch streams all documents from the source.
	// Both channels are closed when fetching completes; a value on the
	// error channel aborts the run.
	Fetch(ctx context.Context) (<-chan domain.RawDocument, <-chan error)

	// Watch listens for source changes and signals on the returned
	// channel when the corpus should be re-fetched.
	// Only available if SupportsWatch is true.
	Watch(ctx context.Context) (<-chan struct{}, error)

	// Close releases resources.
	Close() error
}

// ConnectorCapabilities describes what a connector supports.
type ConnectorCapabilities struct {
	// SupportsWatch indicates the connector can signal source changes.
	SupportsWatch bool

	// RequiresAuth indicates the connector needs a token.
	// False for local connectors like filesystem.
	RequiresAuth bool

	// SupportsRateLimiting indicates the connector throttles API calls
	// internally. Informational.
	SupportsRateLimiting bool
}
