package workers

import "context"

// Workers aggregates the background workers of a client session.
type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context, userID int64) {
	for _, worker := range w.workers {
		worker.Start(ctx, userID)
	}
}

// Stop shuts the workers down in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
