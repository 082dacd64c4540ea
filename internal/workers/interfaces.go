// Package workers manages the client's long-running background jobs.
// It defines the Worker lifecycle contract and a Workers aggregate that
// starts and stops every registered worker in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker
// tied to an authenticated client session.
//
// Start must not block: implementations launch their own goroutines and
// return. Stop blocks until the worker's goroutines have fully exited and
// must be safe to call when the worker is not running.
type Worker interface {
	// Start begins background processing for the given user.
	Start(ctx context.Context, userID int64)

	// Stop terminates background processing and waits for completion.
	Stop()
}
