// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs several
// workers under one context and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is a clean stop.
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// GarbageCollector is implemented by stores that reclaim space in the
// background. RunGC reports how many files it rewrote.
type GarbageCollector interface {
	RunGC(ctx context.Context) (int, error)
}
