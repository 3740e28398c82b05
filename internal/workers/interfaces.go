// Package workers runs the background workers of the tracker server.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] runs
// all configured workers together and stops them all as soon as one fails.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a long-running background task.
//
// Run blocks until ctx is done or the worker fails. Returning nil after
// ctx is cancelled is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
	Name() string
}
