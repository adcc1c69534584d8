package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/altyazi-tools/srtforge/internal/converter"
)

// DefaultBatchSize is used when Run is given a batch size of zero or less.
const DefaultBatchSize = 100

var (
	// ErrInputNotFound marks a job whose input transcript does not exist.
	ErrInputNotFound = errors.New("input file not found")
	// ErrOutputDirUnavailable marks a job whose output directory cannot be
	// created or written to.
	ErrOutputDirUnavailable = errors.New("output directory unavailable")
)

// Run processes the jobs and returns the event channel. Events are emitted in
// job-submission order; the channel is closed after the Done event. Batch
// boundaries only pace the loop, a job's outcome is independent of its batch.
func (r *implRunner) Run(ctx context.Context, jobs []Job, batchSize int) <-chan Event {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	runCtx := r.beginRun(ctx)
	events := make(chan Event)

	go func() {
		defer close(events)
		defer r.endRun()

		total := len(jobs)

	batches:
		for start := 0; start < total; start += batchSize {
			end := start + batchSize
			if end > total {
				end = total
			}

			for i, job := range jobs[start:end] {
				if r.stopped(runCtx) {
					r.logger.Info(runCtx, "Run cancelled after %d of %d jobs", start+i, total)
					break batches
				}

				ordinal := start + i + 1
				label := filepath.Base(job.InputPath)

				if err := r.runJob(runCtx, job); err != nil {
					if errors.Is(err, context.Canceled) {
						r.logger.Info(runCtx, "Run cancelled during %s", label)
						break batches
					}
					r.logger.Warn(runCtx, "Job failed: %s: %v", label, err)
					events <- Event{Type: EventError, Label: label, Message: err.Error()}
					continue
				}

				events <- Event{
					Type:    EventProgress,
					Percent: ordinal * 100 / total,
					Label:   label,
				}
			}
		}

		events <- Event{Type: EventDone}
	}()

	return events
}

// Cancel sets the cancellation flag and aborts the in-flight conversion at
// its next line boundary.
func (r *implRunner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelled = true
	if r.cancelRun != nil {
		r.cancelRun()
	}
}

// beginRun resets the per-run state and derives the context that Cancel
// aborts. A Cancel that raced ahead of Run start is honored immediately.
func (r *implRunner) beginRun(ctx context.Context) context.Context {
	runCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelRun = cancel
	if r.cancelled {
		cancel()
	}
	return runCtx
}

func (r *implRunner) endRun() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelRun != nil {
		r.cancelRun()
		r.cancelRun = nil
	}
	r.cancelled = false
}

func (r *implRunner) stopped(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled
}

// runJob converts one file. Every failure is job-local: the caller reports it
// and moves on to the next job. A context.Canceled return stops the run.
func (r *implRunner) runJob(ctx context.Context, job Job) error {
	if _, err := os.Stat(job.InputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, job.InputPath)
	}

	outDir := filepath.Dir(job.OutputPath)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDirUnavailable, err)
	}
	if err := probeWritable(outDir); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDirUnavailable, err)
	}

	count, err := converter.ConvertOneContext(ctx, job.InputPath, job.OutputPath)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("convert %s: %w", job.InputPath, err)
	}

	r.logger.Debug(ctx, "Converted %s: %d cues", job.InputPath, count)
	return nil
}

// probeWritable verifies write permission on dir by creating and removing a
// scratch file.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".srtforge-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
