// Package cli implements the svomap command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driving"
	"github.com/meridian-sci/svomap-cli/internal/logger"
)

// version is set by Execute.
var version = "dev"

var (
	verboseFlag   bool
	configDirFlag string
)

// SourceConfig selects and configures the document sources for one
// invocation.
type SourceConfig struct {
	// InputDir is the local narrative directory. Empty disables the
	// filesystem source.
	InputDir string

	// Include and Exclude are doublestar glob patterns applied while
	// walking InputDir.
	Include []string
	Exclude []string

	// GitHubRepo is an optional "owner/repo" issue source.
	GitHubRepo string

	// GitHubToken authenticates the issues connector.
	GitHubToken string
}

// Runner bundles a wired pipeline with the change notification hook of
// its sources.
type Runner struct {
	Pipeline driving.PipelineService
	Watch    func(ctx context.Context) (<-chan struct{}, error)
	Close    func() error
}

// Services are the driving-side dependencies the commands run against.
type Services struct {
	// NewRunner wires a pipeline for the given sources and parameters.
	NewRunner func(cfg SourceConfig, params domain.PipelineParams) (*Runner, error)

	Settings driving.SettingsService
	Vocab    driving.VocabService
}

var (
	newRunner       func(cfg SourceConfig, params domain.PipelineParams) (*Runner, error)
	settingsService driving.SettingsService
	vocabService    driving.VocabService
)

// initServices builds the services once the persistent flags are
// parsed. Installed by SetInitializer from main.
var initServices func(configDir string) (*Services, error)

// SetInitializer installs the factory that wires the services after
// flag parsing. Must be called before Execute.
func SetInitializer(fn func(configDir string) (*Services, error)) {
	initServices = fn
}

// setServices installs the service implementations the commands use.
func setServices(s *Services) {
	newRunner = s.NewRunner
	settingsService = s.Settings
	vocabService = s.Vocab
}

var rootCmd = &cobra.Command{
	Use:   "svomap",
	Short: "Map stakeholder narratives to scientific variables",
	Long: `svomap turns free-text stakeholder narratives into structured
scientific-variable mappings.

It loads documents from a directory or a GitHub issue tracker, fits a
topic model over the corpus, maps each topic onto a science backbone
taxonomy, extracts decision components (goals, objectives, variables,
constraints, indicators) and links topic terms to a Scientific Variable
Object dictionary. Results are exported as CSV tables, HTML charts, a
Markdown summary and a SQLite archive.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if initServices == nil {
			return nil
		}
		services, err := initServices(configDirFlag)
		if err != nil {
			return fmt.Errorf("initialise services: %w", err)
		}
		setServices(services)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose progress output on stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"configuration directory (default ~/.svomap)")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// buildRunner wires a pipeline for the current flag and settings state.
func buildRunner(cfg SourceConfig, params domain.PipelineParams) (*Runner, error) {
	if newRunner == nil {
		return nil, errors.New("pipeline not configured")
	}
	return newRunner(cfg, params)
}
