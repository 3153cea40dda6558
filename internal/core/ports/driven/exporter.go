package driven

import (
	"context"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

// Exporter writes one output artifact for a finished run.
// Exporters are independent; each writes its own file(s) under the
// output directory.
type Exporter interface {
	// Name returns the exporter name for logging.
	Name() string

	// Export writes the artifact(s) into dir.
	Export(ctx context.Context, result *domain.RunResult, dir string) error
}
