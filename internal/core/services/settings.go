package services

import (
	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Settings keys.
const (
	KeyInputDir     = "input.dir"
	KeyInputInclude = "input.include"
	KeyInputExclude = "input.exclude"
	KeyOutputDir    = "output.dir"
	KeyBackbonePath = "vocab.backbone"
	KeySVOPath      = "vocab.svo"
	KeyTopics       = "model.topics"
	KeyVocabCap     = "model.vocabulary_cap"
	KeyIterations   = "model.iterations"
	KeySeed         = "model.seed"
	KeyWorkers      = "model.workers"
	KeyTopTerms     = "model.top_terms"
	KeyGitHubRepo   = "github.repo"
	KeyGitHubToken  = "github.token"
)

// settingsKeys lists every known key in display order.
var settingsKeys = []string{
	KeyInputDir,
	KeyInputInclude,
	KeyInputExclude,
	KeyOutputDir,
	KeyBackbonePath,
	KeySVOPath,
	KeyTopics,
	KeyVocabCap,
	KeyIterations,
	KeySeed,
	KeyWorkers,
	KeyTopTerms,
	KeyGitHubRepo,
	KeyGitHubToken,
}

// SettingsService persists application settings through the config
// store.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get retrieves current settings with defaults applied.
func (s *SettingsService) Get() (*driving.AppSettings, error) {
	params := domain.DefaultPipelineParams()
	if v := s.store.GetInt(KeyTopics); v > 0 {
		params.TopicCount = v
	}
	if v := s.store.GetInt(KeyVocabCap); v > 0 {
		params.VocabularyCap = v
	}
	if v := s.store.GetInt(KeyIterations); v > 0 {
		params.Iterations = v
	}
	if v := s.store.GetInt(KeySeed); v != 0 {
		params.Seed = int64(v)
	}
	if v := s.store.GetInt(KeyWorkers); v > 0 {
		params.Workers = v
	}
	if v := s.store.GetInt(KeyTopTerms); v > 0 {
		params.TopTermCount = v
	}

	settings := &driving.AppSettings{
		Params:       params,
		InputDir:     s.store.GetString(KeyInputDir),
		Include:      s.store.GetStringSlice(KeyInputInclude),
		Exclude:      s.store.GetStringSlice(KeyInputExclude),
		OutputDir:    s.store.GetString(KeyOutputDir),
		BackbonePath: s.store.GetString(KeyBackbonePath),
		SVOPath:      s.store.GetString(KeySVOPath),
		GitHubRepo:   s.store.GetString(KeyGitHubRepo),
		GitHubToken:  s.store.GetString(KeyGitHubToken),
	}
	if settings.OutputDir == "" {
		settings.OutputDir = "svomap-out"
	}
	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *driving.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	pairs := map[string]any{
		KeyInputDir:     settings.InputDir,
		KeyInputInclude: settings.Include,
		KeyInputExclude: settings.Exclude,
		KeyOutputDir:    settings.OutputDir,
		KeyBackbonePath: settings.BackbonePath,
		KeySVOPath:      settings.SVOPath,
		KeyTopics:       settings.Params.TopicCount,
		KeyVocabCap:     settings.Params.VocabularyCap,
		KeyIterations:   settings.Params.Iterations,
		KeySeed:         int(settings.Params.Seed),
		KeyWorkers:      settings.Params.Workers,
		KeyTopTerms:     settings.Params.TopTermCount,
		KeyGitHubRepo:   settings.GitHubRepo,
		KeyGitHubToken:  settings.GitHubToken,
	}
	for key, value := range pairs {
		if err := s.store.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetKey sets a single raw config key.
func (s *SettingsService) SetKey(key string, value any) error {
	return s.store.Set(key, value)
}

// GetKey reads a single raw config key.
func (s *SettingsService) GetKey(key string) (any, bool) {
	return s.store.Get(key)
}

// Keys returns the known settings keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}
