package workers

import (
	"context"
	"time"

	"github.com/adenikin/go-note-keeper/internal/service"
)

// syncWorker adapts the service-layer sync job to the Worker lifecycle.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncWorker wraps job into a Worker that syncs every interval.
// A non-positive interval falls back to the job's built-in default.
func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Start(ctx context.Context, userID int64) {
	w.job.Start(ctx, userID, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
