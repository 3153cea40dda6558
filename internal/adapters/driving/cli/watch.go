package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input-dir]",
	Short: "Re-run the pipeline whenever the input changes",
	Long: `Runs the full pipeline once, then watches the input directory and
re-runs on every change. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	addPipelineFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	src, opts, err := resolveRun(cmd, args, false)
	if err != nil {
		return err
	}

	runner, err := buildRunner(src, opts.Params)
	if err != nil {
		return err
	}
	defer closeRunner(runner)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if runner.Watch == nil {
		return errors.New("the configured sources do not support watching")
	}
	changes, err := runner.Watch(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotImplemented) {
			return errors.New("the configured sources do not support watching")
		}
		return fmt.Errorf("start watching: %w", err)
	}

	runOnce := func() {
		result, runErr := runner.Pipeline.Run(ctx, opts)
		if runErr != nil {
			cmd.PrintErrf("run failed: %v\n", runErr)
			return
		}
		cmd.Printf("Mapped %d documents into %d topics; artifacts in %s\n",
			result.Corpus.Len(), len(result.Model.Topics), opts.OutputDir)
	}

	runOnce()
	cmd.Println("Watching for changes. Press Ctrl-C to stop.")

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			cmd.Println("Change detected, re-running...")
			runOnce()
		}
	}
}
