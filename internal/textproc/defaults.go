package textproc

import (
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/textproc/bagger"
	"github.com/meridian-sci/svomap-cli/internal/textproc/cleaner"
	"github.com/meridian-sci/svomap-cli/internal/textproc/stopwords"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("bagger", buildBagger)
	r.Register("cleaner", buildCleaner)
	r.Register("stopwords", buildStopwords)
}

// DefaultPipeline builds the standard preprocessing chain:
// sentence bagging, normalisation, then stop word removal.
func DefaultPipeline(extraStopWords ...string) *Pipeline {
	return NewPipeline(
		bagger.New(),
		cleaner.New(),
		stopwords.New(stopwords.WithExtra(extraStopWords...)),
	)
}

// buildBagger creates a bagger processor from generic config.
// Supported config keys:
//   - min_bag_length (int): Minimum bag length in characters (default: 3)
func buildBagger(cfg map[string]any) (driven.TextProcessor, error) {
	var opts []bagger.Option
	if n := getIntFromConfig(cfg, "min_bag_length"); n > 0 {
		opts = append(opts, bagger.WithMinBagLength(n))
	}
	return bagger.New(opts...), nil
}

// buildCleaner creates a cleaner processor. No config keys.
func buildCleaner(_ map[string]any) (driven.TextProcessor, error) {
	return cleaner.New(), nil
}

// buildStopwords creates a stopwords processor from generic config.
// Supported config keys:
//   - extra ([]string): Additional stop words
//   - min_token_length (int): Minimum token length kept (default: 3)
func buildStopwords(cfg map[string]any) (driven.TextProcessor, error) {
	var opts []stopwords.Option
	if cfg != nil {
		if extra, ok := cfg["extra"].([]string); ok {
			opts = append(opts, stopwords.WithExtra(extra...))
		}
		if n := getIntFromConfig(cfg, "min_token_length"); n > 0 {
			opts = append(opts, stopwords.WithMinTokenLength(n))
		}
	}
	return stopwords.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
