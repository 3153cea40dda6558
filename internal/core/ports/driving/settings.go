package driving

import "github.com/meridian-sci/svomap-cli/internal/core/domain"

// AppSettings are the persisted application settings.
type AppSettings struct {
	// Params are the default pipeline parameters.
	Params domain.PipelineParams

	// InputDir is the default corpus directory.
	InputDir string

	// Include and Exclude are doublestar glob patterns applied when
	// walking the input directory.
	Include []string
	Exclude []string

	// OutputDir is the default export directory.
	OutputDir string

	// BackbonePath and SVOPath are the default vocabulary files.
	BackbonePath string
	SVOPath      string

	// GitHubRepo is an optional "owner/repo" issue source.
	GitHubRepo string

	// GitHubToken authenticates the issues connector.
	GitHubToken string
}

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get retrieves current settings with defaults applied.
	Get() (*AppSettings, error)

	// Save persists settings.
	Save(settings *AppSettings) error

	// SetKey sets a single raw config key.
	SetKey(key string, value any) error

	// GetKey reads a single raw config key.
	GetKey(key string) (any, bool)

	// Keys returns the known settings keys in display order.
	Keys() []string
}
