package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/meridian-sci/svomap-cli/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [input-dir]",
	Short: "Run the pipeline and browse the results interactively",
	Long: `Runs the pipeline and opens an interactive terminal browser over
the discovered topics, their backbone domains, linked SVO variables and
dominated documents. Nothing is exported.

Controls:
  ↑/k, ↓/j  - Navigate topics
  tab       - Switch detail pane
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	addPipelineFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Panic recovery so the terminal is restored with a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	result, _, err := executePipeline(cmd, args, true)
	if err != nil {
		return err
	}

	browser, err := tui.NewBrowser(result)
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	program := tea.NewProgram(browser, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
