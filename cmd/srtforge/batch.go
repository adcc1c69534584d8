package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/altyazi-tools/srtforge/internal/config"
	"github.com/altyazi-tools/srtforge/internal/logger"
	"github.com/altyazi-tools/srtforge/internal/runner"
)

func newBatchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [transcript.txt ...]",
		Short: "Convert many transcript files as one batch run",
		Long: "Converts the given transcript files, or every .txt file in the configured\n" +
			"input directory when no arguments are given. Outputs land in the configured\n" +
			"output directory. Ctrl+C cancels the run after the current file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging.Level)

			jobs, err := collectJobs(cfg, args)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				log.Info(ctx, "No transcript files to convert")
				return nil
			}

			r := runner.New(log)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)
			go func() {
				<-sigChan
				log.Info(ctx, "Cancellation requested, stopping after current file...")
				r.Cancel()
			}()

			log.Info(ctx, "Starting batch run: %d jobs (batch size %d)", len(jobs), cfg.Batch.Size)

			failed := 0
			for event := range r.Run(ctx, jobs, cfg.Batch.Size) {
				switch event.Type {
				case runner.EventProgress:
					log.Info(ctx, "[%3d%%] %s", event.Percent, event.Label)
				case runner.EventError:
					log.Error(ctx, "%s: %s", event.Label, event.Message)
					failed++
				case runner.EventDone:
					log.Info(ctx, "Batch run finished")
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
			}
			return nil
		},
	}
}

// collectJobs pairs each transcript with its output path. Explicit arguments
// win; otherwise the configured input directory is scanned for .txt files,
// sorted so runs are deterministic.
func collectJobs(cfg *config.Config, args []string) ([]runner.Job, error) {
	inputs := args
	if len(inputs) == 0 {
		matches, err := filepath.Glob(filepath.Join(cfg.Paths.Input, "*.txt"))
		if err != nil {
			return nil, fmt.Errorf("scan input directory: %w", err)
		}
		sort.Strings(matches)
		inputs = matches
	}

	jobs := make([]runner.Job, 0, len(inputs))
	for _, in := range inputs {
		stem := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		jobs = append(jobs, runner.Job{
			InputPath:  in,
			OutputPath: filepath.Join(cfg.Paths.Output, stem+".srt"),
		})
	}
	return jobs, nil
}
