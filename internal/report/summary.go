package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure SummaryExporter implements the interface.
var _ driven.Exporter = (*SummaryExporter)(nil)

// SummaryFile is the Markdown summary file name.
const SummaryFile = "summary.md"

// SummaryExporter writes the human-readable run summary.
type SummaryExporter struct{}

// NewSummaryExporter creates a new summary exporter.
func NewSummaryExporter() *SummaryExporter {
	return &SummaryExporter{}
}

// Name returns the exporter name.
func (e *SummaryExporter) Name() string {
	return "summary"
}

// Export writes summary.md.
func (e *SummaryExporter) Export(ctx context.Context, result *domain.RunResult, dir string) error {
	if result == nil || result.Model == nil {
		return domain.ErrInvalidInput
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, []byte(renderSummary(result)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func renderSummary(result *domain.RunResult) string {
	var sb strings.Builder

	sb.WriteString("# Variable mapping summary\n\n")
	fmt.Fprintf(&sb, "Generated %s.\n\n", result.GeneratedAt.Format(time.RFC3339))

	docCount := 0
	if result.Corpus != nil {
		docCount = result.Corpus.Len()
	}
	fmt.Fprintf(&sb, "- Documents: %d\n", docCount)
	fmt.Fprintf(&sb, "- Topics: %d\n", len(result.Model.Topics))
	fmt.Fprintf(&sb, "- Decision components: %d\n", len(result.Components))
	fmt.Fprintf(&sb, "- SVO links: %d\n", len(result.Links))
	if result.Params.Seed != 0 {
		fmt.Fprintf(&sb, "- Seed: %d\n", result.Params.Seed)
	}
	sb.WriteString("\n## Topics\n\n")

	counts := result.Model.DominantTopicCounts()
	for _, mapping := range result.Mappings {
		fmt.Fprintf(&sb, "### Topic %d\n\n", mapping.TopicID)
		fmt.Fprintf(&sb, "Top terms: %s\n\n", strings.Join(mapping.TopTerms, ", "))
		if mapping.TopicID < len(counts) {
			fmt.Fprintf(&sb, "Dominant in %d documents.\n\n", counts[mapping.TopicID])
		}

		if len(mapping.Backbone) == 0 {
			sb.WriteString("No backbone domain matched.\n\n")
		} else {
			for _, match := range mapping.Backbone {
				line := fmt.Sprintf("- **%s** (score %.2f)", match.Domain, match.Score)
				if match.Manual {
					line += " [manual]"
				}
				if len(match.Subdisciplines) > 0 {
					line += ": " + strings.Join(match.Subdisciplines, ", ")
				}
				sb.WriteString(line + "\n")
			}
			sb.WriteString("\n")
		}

		if len(mapping.SVO) > 0 {
			sb.WriteString("Linked variables:\n")
			for _, link := range mapping.SVO {
				fmt.Fprintf(&sb, "- %s -> %s (score %.2f)\n", link.Term, link.Variable, link.Score)
			}
			sb.WriteString("\n")
		}
	}

	if len(result.Components) > 0 {
		sb.WriteString("## Decision components\n\n")
		byCategory := make(map[domain.ComponentCategory]int)
		for _, c := range result.Components {
			byCategory[c.Category]++
		}
		for _, category := range domain.AllComponentCategories() {
			if n := byCategory[category]; n > 0 {
				fmt.Fprintf(&sb, "- %s: %d\n", category, n)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
