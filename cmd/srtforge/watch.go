package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/altyazi-tools/srtforge/internal/config"
	"github.com/altyazi-tools/srtforge/internal/converter"
	"github.com/altyazi-tools/srtforge/internal/logger"
	"github.com/altyazi-tools/srtforge/internal/watcher"
)

func newWatchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and convert dropped transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging.Level)

			if err := ensureDirectories(cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			handler := func(ctx context.Context, filePath string) error {
				stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
				outputPath := filepath.Join(cfg.Paths.Output, stem+".srt")

				count, err := converter.ConvertOne(filePath, outputPath)
				if err != nil {
					return err
				}
				log.Info(ctx, "Converted %s: %d cues -> %s", filepath.Base(filePath), count, outputPath)
				return nil
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "========================================")
			log.Info(ctx, "srtforge is watching for transcripts")
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return fmt.Errorf("watcher error: %w", err)
			}

			log.Info(ctx, "Shutting down gracefully...")
			cancel()
			return nil
		},
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
