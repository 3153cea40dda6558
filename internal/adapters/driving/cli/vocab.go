package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	vocabBackbone string
	vocabSVO      string
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage vocabulary files",
}

var vocabCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the backbone and SVO dictionary files",
	Long: `Loads both vocabulary files, validates their structure and reports
inconsistencies such as SVO variables referencing unknown domains.`,
	RunE: runVocabCheck,
}

func init() {
	vocabCheckCmd.Flags().StringVar(&vocabBackbone, "backbone", "", "science backbone YAML file")
	vocabCheckCmd.Flags().StringVar(&vocabSVO, "svo", "", "SVO dictionary YAML file")
	vocabCmd.AddCommand(vocabCheckCmd)
	rootCmd.AddCommand(vocabCmd)
}

func runVocabCheck(cmd *cobra.Command, _ []string) error {
	if vocabService == nil {
		return errors.New("vocab service not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backbonePath, svoPath := vocabBackbone, vocabSVO
	if backbonePath == "" || svoPath == "" {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		if backbonePath == "" {
			backbonePath = settings.BackbonePath
		}
		if svoPath == "" {
			svoPath = settings.SVOPath
		}
	}
	if backbonePath == "" || svoPath == "" {
		return errors.New(
			"vocabulary files not set: pass --backbone and --svo or configure vocab.backbone and vocab.svo")
	}

	report, err := vocabService.Check(backbonePath, svoPath)
	if err != nil {
		return fmt.Errorf("vocabulary check failed: %w", err)
	}

	cmd.Printf("Backbone: %d domains, %d subdisciplines\n", report.Domains, report.Subdisciplines)
	cmd.Printf("SVO dictionary: %d variables\n", report.Variables)
	if len(report.Warnings) == 0 {
		cmd.Println("Vocabulary is consistent.")
		return nil
	}
	cmd.Printf("%d warnings:\n", len(report.Warnings))
	for _, warning := range report.Warnings {
		cmd.Printf("  - %s\n", warning)
	}
	return nil
}
