package runner

import (
	"context"
	"sync"

	"github.com/altyazi-tools/srtforge/internal/logger"
)

type implRunner struct {
	logger logger.Logger

	mu        sync.Mutex
	cancelled bool
	cancelRun context.CancelFunc
}

// New creates a new Runner instance.
func New(log logger.Logger) Runner {
	return &implRunner{
		logger: log,
	}
}
