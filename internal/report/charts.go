package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/logger"
)

// Ensure ChartExporter implements the interface.
var _ driven.Exporter = (*ChartExporter)(nil)

// Output file names.
const (
	TopicsChartFile  = "topics.html"
	ScatterChartFile = "scatter.html"
)

// ChartExporter writes the interactive HTML charts.
type ChartExporter struct{}

// NewChartExporter creates a new chart exporter.
func NewChartExporter() *ChartExporter {
	return &ChartExporter{}
}

// Name returns the exporter name.
func (e *ChartExporter) Name() string {
	return "charts"
}

// Export writes topics.html and, when embedding coordinates exist,
// scatter.html.
func (e *ChartExporter) Export(ctx context.Context, result *domain.RunResult, dir string) error {
	if result == nil || result.Model == nil {
		return domain.ErrInvalidInput
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := e.renderTopicsBar(result, filepath.Join(dir, TopicsChartFile)); err != nil {
		return err
	}

	if len(result.Coordinates) == 0 {
		logger.Debug("no embedding coordinates, skipping %s", ScatterChartFile)
		return nil
	}
	return e.renderScatter(result, filepath.Join(dir, ScatterChartFile))
}

// renderTopicsBar charts dominant-document counts and scaled weight
// per topic.
func (e *ChartExporter) renderTopicsBar(result *domain.RunResult, path string) error {
	model := result.Model
	counts := model.DominantTopicCounts()

	labels := make([]string, len(model.Topics))
	countData := make([]opts.BarData, len(model.Topics))
	shareData := make([]opts.BarData, len(model.Topics))
	for i, topic := range model.Topics {
		labels[i] = topicLabel(topic)
		countData[i] = opts.BarData{Value: counts[i]}
		shareData[i] = opts.BarData{Value: model.TopicShares[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Discovered topics",
			Subtitle: "Dominant document count and scaled topic weight",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("documents", countData).
		AddSeries("scaled weight", shareData)

	return renderChart(bar, path)
}

// renderScatter charts the 2-D document embedding, one series per
// dominant topic.
func (e *ChartExporter) renderScatter(result *domain.RunResult, path string) error {
	model := result.Model

	series := make(map[int][]opts.ScatterData, len(model.Topics))
	for doc, coord := range result.Coordinates {
		topicID := 0
		if doc < len(model.DominantTopics) {
			topicID = model.DominantTopics[doc]
		}
		name := ""
		if result.Corpus != nil && doc < result.Corpus.Len() {
			name = result.Corpus.Document(doc).Title
		}
		series[topicID] = append(series[topicID], opts.ScatterData{
			Name:  name,
			Value: []any{coord[0], coord[1]},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Document map",
			Subtitle: "2-D embedding of per-document topic weights",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	for _, topic := range model.Topics {
		if points, ok := series[topic.ID]; ok {
			scatter.AddSeries(topicLabel(topic), points)
		}
	}

	return renderChart(scatter, path)
}

// renderer is the common surface of go-echarts chart types.
type renderer interface {
	Render(w io.Writer) error
}

func renderChart(chart renderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// topicLabel names a topic by its index and three top terms.
func topicLabel(topic domain.Topic) string {
	label := fmt.Sprintf("topic %d", topic.ID)
	terms := topic.TopTerms(3)
	if len(terms) == 0 {
		return label
	}
	label += ":"
	for _, tw := range terms {
		label += " " + tw.Term
	}
	return label
}
