package cli

import (
	"github.com/spf13/cobra"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

var componentsCmd = &cobra.Command{
	Use:   "components [input-dir]",
	Short: "Extract and print decision components",
	Long: `Runs the pipeline and prints the extracted decision components
(goals, objectives, variables, constraints and indicators) grouped by
category. Nothing is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComponents,
}

func init() {
	addPipelineFlags(componentsCmd)
	rootCmd.AddCommand(componentsCmd)
}

func runComponents(cmd *cobra.Command, args []string) error {
	result, _, err := executePipeline(cmd, args, true)
	if err != nil {
		return err
	}

	byCategory := make(map[domain.ComponentCategory][]domain.DecisionComponent)
	for _, component := range result.Components {
		byCategory[component.Category] = append(byCategory[component.Category], component)
	}

	titles := make(map[string]string, result.Corpus.Len())
	for _, doc := range result.Corpus.Documents() {
		titles[doc.ID] = doc.Title
	}

	for _, category := range domain.AllComponentCategories() {
		components := byCategory[category]
		cmd.Printf("[%s] %d found\n", category, len(components))
		for _, component := range components {
			cmd.Printf("  %-30s %s\n", titles[component.DocumentID], component.Text)
		}
		cmd.Println()
	}
	return nil
}
