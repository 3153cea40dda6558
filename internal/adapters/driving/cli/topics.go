package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [input-dir]",
	Short: "Fit the topic model and print the topics",
	Long: `Runs the pipeline up to backbone mapping and prints each topic
with its top terms and matched science domains. Nothing is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTopics,
}

func init() {
	addPipelineFlags(topicsCmd)
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	result, _, err := executePipeline(cmd, args, true)
	if err != nil {
		return err
	}

	counts := result.Model.DominantTopicCounts()
	for _, mapping := range result.Mappings {
		topic := result.Model.Topics[mapping.TopicID]
		cmd.Printf("Topic %d (%d documents)\n", topic.ID, counts[topic.ID])
		cmd.Printf("  terms:   %s\n", strings.Join(mapping.TopTerms, ", "))

		if len(mapping.Backbone) == 0 {
			cmd.Println("  domains: (no backbone match)")
		} else {
			parts := make([]string, 0, len(mapping.Backbone))
			for _, match := range mapping.Backbone {
				label := fmt.Sprintf("%s (%.2f)", match.Domain, match.Score)
				if match.Manual {
					label = match.Domain + " (manual)"
				}
				parts = append(parts, label)
			}
			cmd.Printf("  domains: %s\n", strings.Join(parts, ", "))
		}

		if len(mapping.SVO) > 0 {
			parts := make([]string, 0, len(mapping.SVO))
			for _, link := range mapping.SVO {
				parts = append(parts, fmt.Sprintf("%s->%s (%.2f)", link.Term, link.Variable, link.Score))
			}
			cmd.Printf("  svo:     %s\n", strings.Join(parts, ", "))
		}
		cmd.Println()
	}
	return nil
}
