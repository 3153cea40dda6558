package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driving"
)

// Pipeline flags shared by run, topics, components, watch and browse.
var (
	flagInclude   []string
	flagExclude   []string
	flagOutputDir string
	flagBackbone  string
	flagSVO       string
	flagTopics    int
	flagVocabCap  int
	flagIters     int
	flagSeed      int64
	flagWorkers   int
	flagTopTerms  int
	flagGitHub    string
	flagOverrides []string
)

var runCmd = &cobra.Command{
	Use:   "run [input-dir]",
	Short: "Run the full mapping pipeline",
	Long: `Loads every supported document from the input sources, fits the
topic model, maps topics onto the science backbone, extracts decision
components, links terms to SVO variables and writes all artifacts to
the output directory.

With a fixed --seed the run is fully reproducible.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	addPipelineFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagInclude, "include", nil, "glob patterns to include (e.g. '**/*.md')")
	cmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().StringVarP(&flagOutputDir, "output", "o", "", "output directory for artifacts")
	cmd.Flags().StringVar(&flagBackbone, "backbone", "", "science backbone YAML file")
	cmd.Flags().StringVar(&flagSVO, "svo", "", "SVO dictionary YAML file")
	cmd.Flags().IntVarP(&flagTopics, "topics", "k", 0, "number of topics to fit")
	cmd.Flags().IntVar(&flagVocabCap, "vocab-cap", 0, "maximum modelling vocabulary size")
	cmd.Flags().IntVar(&flagIters, "iterations", 0, "LDA sampling iterations")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (non-zero for reproducible runs)")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel document loading workers")
	cmd.Flags().IntVar(&flagTopTerms, "top-terms", 0, "top terms per topic used for mapping")
	cmd.Flags().StringVar(&flagGitHub, "github", "", "GitHub issue source as owner/repo")
	cmd.Flags().StringArrayVar(&flagOverrides, "override", nil,
		"force a topic onto a backbone domain as topic=domain (repeatable)")
}

func runRun(cmd *cobra.Command, args []string) error {
	result, opts, err := executePipeline(cmd, args, false)
	if err != nil {
		return err
	}

	cmd.Printf("Mapped %d documents into %d topics.\n",
		result.Corpus.Len(), len(result.Model.Topics))
	cmd.Printf("Extracted %d decision components, linked %d SVO variables.\n",
		len(result.Components), len(result.Links))
	cmd.Printf("Artifacts written to %s\n", opts.OutputDir)
	return nil
}

// executePipeline resolves options from persisted settings and flags,
// wires the sources and runs the pipeline.
func executePipeline(
	cmd *cobra.Command, args []string, skipExport bool,
) (*domain.RunResult, driving.RunOptions, error) {
	var zero driving.RunOptions

	src, opts, err := resolveRun(cmd, args, skipExport)
	if err != nil {
		return nil, zero, err
	}

	runner, err := buildRunner(src, opts.Params)
	if err != nil {
		return nil, zero, err
	}
	defer closeRunner(runner)

	result, err := runner.Pipeline.Run(context.Background(), opts)
	if err != nil {
		return nil, zero, fmt.Errorf("pipeline failed: %w", err)
	}
	return result, opts, nil
}

// resolveRun merges persisted settings with command flags into the
// source and run configuration for one invocation.
func resolveRun(
	cmd *cobra.Command, args []string, skipExport bool,
) (SourceConfig, driving.RunOptions, error) {
	var (
		zeroSrc  SourceConfig
		zeroOpts driving.RunOptions
	)

	if settingsService == nil {
		return zeroSrc, zeroOpts, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return zeroSrc, zeroOpts, fmt.Errorf("load settings: %w", err)
	}

	src := SourceConfig{
		InputDir:    settings.InputDir,
		Include:     settings.Include,
		Exclude:     settings.Exclude,
		GitHubRepo:  settings.GitHubRepo,
		GitHubToken: settings.GitHubToken,
	}
	if len(args) > 0 {
		src.InputDir = args[0]
	}
	if cmd.Flags().Changed("include") {
		src.Include = flagInclude
	}
	if cmd.Flags().Changed("exclude") {
		src.Exclude = flagExclude
	}
	if cmd.Flags().Changed("github") {
		src.GitHubRepo = flagGitHub
	}
	if src.InputDir == "" && src.GitHubRepo == "" {
		return zeroSrc, zeroOpts, errors.New(
			"no input source: pass an input directory or configure github.repo")
	}

	opts := driving.RunOptions{
		BackbonePath: settings.BackbonePath,
		SVOPath:      settings.SVOPath,
		OutputDir:    settings.OutputDir,
		Params:       settings.Params,
		SkipExport:   skipExport,
	}
	if cmd.Flags().Changed("backbone") {
		opts.BackbonePath = flagBackbone
	}
	if cmd.Flags().Changed("svo") {
		opts.SVOPath = flagSVO
	}
	if cmd.Flags().Changed("output") {
		opts.OutputDir = flagOutputDir
	}
	if cmd.Flags().Changed("topics") {
		opts.Params.TopicCount = flagTopics
	}
	if cmd.Flags().Changed("vocab-cap") {
		opts.Params.VocabularyCap = flagVocabCap
	}
	if cmd.Flags().Changed("iterations") {
		opts.Params.Iterations = flagIters
	}
	if cmd.Flags().Changed("seed") {
		opts.Params.Seed = flagSeed
	}
	if cmd.Flags().Changed("workers") {
		opts.Params.Workers = flagWorkers
	}
	if cmd.Flags().Changed("top-terms") {
		opts.Params.TopTermCount = flagTopTerms
	}
	if opts.BackbonePath == "" || opts.SVOPath == "" {
		return zeroSrc, zeroOpts, errors.New(
			"vocabulary files not set: pass --backbone and --svo or configure vocab.backbone and vocab.svo")
	}

	overrides, err := parseOverrides(flagOverrides)
	if err != nil {
		return zeroSrc, zeroOpts, err
	}
	opts.TopicOverrides = overrides

	return src, opts, nil
}

// parseOverrides turns repeated "topic=domain" flags into the override
// map the mapper consumes.
func parseOverrides(raw []string) (map[int]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	overrides := make(map[int]string, len(raw))
	for _, pair := range raw {
		topicStr, name, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid override %q: expected topic=domain", pair)
		}
		topicID, err := strconv.Atoi(strings.TrimSpace(topicStr))
		if err != nil || topicID < 0 {
			return nil, fmt.Errorf("invalid override %q: topic must be a non-negative number", pair)
		}
		overrides[topicID] = strings.TrimSpace(name)
	}
	return overrides, nil
}

//nolint:errcheck // Close is best effort on the way out
func closeRunner(r *Runner) {
	if r.Close != nil {
		r.Close()
	}
}
