// Package workers provides the background workers of the mesasync daemon.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/mbarbosa/mesasync/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution and returns immediately; the worker
// spawns goroutines internally. Stop blocks until the worker has shut down.
type Worker interface {
	Run()
	Stop()
}

// SyncRunner is the slice of the orchestrator the background trigger needs.
type SyncRunner interface {
	SyncAll(ctx context.Context) models.SyncResult
	Pending(ctx context.Context, userID int64) (int, error)
}
