package runner

import "context"

// Runner executes batches of conversion jobs and reports events.
type Runner interface {
	// Run processes jobs in contiguous batches of batchSize, in submission
	// order, and returns a channel of events. The channel carries one
	// Progress or JobError event per attempted job, in job order, and is
	// closed after exactly one Done event.
	Run(ctx context.Context, jobs []Job, batchSize int) <-chan Event

	// Cancel requests a cooperative stop. It may be called concurrently
	// with a run; no new job or batch starts after the flag is observed,
	// and an in-flight file stops at its next line boundary.
	Cancel()
}
