package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure CSVExporter implements the interface.
var _ driven.Exporter = (*CSVExporter)(nil)

// Output file names.
const (
	TopicDomainsFile = "topic_domains.csv"
	ComponentsFile   = "components.csv"
	SVOLinksFile     = "svo_links.csv"
)

// CSVExporter writes the three tabular artifacts of a run.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Name returns the exporter name.
func (e *CSVExporter) Name() string {
	return "csv"
}

// Export writes topic_domains.csv, components.csv and svo_links.csv.
func (e *CSVExporter) Export(ctx context.Context, result *domain.RunResult, dir string) error {
	if result == nil {
		return domain.ErrInvalidInput
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := writeTopicDomains(filepath.Join(dir, TopicDomainsFile), result); err != nil {
		return err
	}
	if err := writeComponents(filepath.Join(dir, ComponentsFile), result); err != nil {
		return err
	}
	return writeSVOLinks(filepath.Join(dir, SVOLinksFile), result)
}

// writeCSV writes header plus rows to path, fully flushed.
func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func writeTopicDomains(path string, result *domain.RunResult) error {
	header := []string{"topic", "top_terms", "domain", "subdisciplines", "score", "manual"}

	var rows [][]string
	for _, mapping := range result.Mappings {
		if len(mapping.Backbone) == 0 {
			rows = append(rows, []string{
				strconv.Itoa(mapping.TopicID),
				strings.Join(mapping.TopTerms, " "),
				"", "", "", "false",
			})
			continue
		}
		for _, match := range mapping.Backbone {
			rows = append(rows, []string{
				strconv.Itoa(mapping.TopicID),
				strings.Join(mapping.TopTerms, " "),
				match.Domain,
				strings.Join(match.Subdisciplines, "; "),
				strconv.FormatFloat(match.Score, 'f', 4, 64),
				strconv.FormatBool(match.Manual),
			})
		}
	}
	return writeCSV(path, header, rows)
}

func writeComponents(path string, result *domain.RunResult) error {
	header := []string{"document_id", "category", "text", "start", "end"}

	rows := make([][]string, 0, len(result.Components))
	for _, c := range result.Components {
		rows = append(rows, []string{
			c.DocumentID,
			c.Category.String(),
			c.Text,
			strconv.Itoa(c.Start),
			strconv.Itoa(c.End),
		})
	}
	return writeCSV(path, header, rows)
}

func writeSVOLinks(path string, result *domain.RunResult) error {
	header := []string{"term", "variable", "score"}

	rows := make([][]string, 0, len(result.Links))
	for _, link := range result.Links {
		rows = append(rows, []string{
			link.Term,
			link.Variable,
			strconv.FormatFloat(link.Score, 'f', 4, 64),
		})
	}
	return writeCSV(path, header, rows)
}
