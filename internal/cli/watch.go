package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ppiankov/msgsweep/internal/pipeline"
	"github.com/ppiankov/msgsweep/internal/watch"
	"github.com/spf13/cobra"
)

var debounce time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the sweep whenever the catalog or sources change",
	Long: `Watch monitors the catalog file and the search roots and re-runs the
sweep after each change. Unchanged source files are served from the content
cache between runs.

Unlike check, watch never exits with a failure status for unused messages;
it keeps reporting until interrupted.

Example:
  msgsweep watch
  msgsweep watch --root web --debounce 1s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addCheckFlags(watchCmd)
	watchCmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "delay after the last change before rescanning")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// One pipeline for all runs, so the content cache carries over
	p := pipeline.NewPipeline(cfg, nil)
	renderer := pipeline.NewRenderer(nil, os.Stdout, cfg.Output.IncludeFooter)

	paths := append([]string{cfg.Catalog.Path}, cfg.Corpus.Roots...)
	w := watch.New(paths, debounce)

	fmt.Fprintf(os.Stderr, "Watching %v (interrupt to stop)\n\n", paths)

	err := w.Run(ctx, func() {
		report, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Sweep failed: %v\n", err)
			return
		}
		renderer.RenderSummary(report)
		fmt.Fprintln(os.Stdout)
	})

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
