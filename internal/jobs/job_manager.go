package jobs

import (
	"fmt"
)

// JobManager owns the background schedulers started by cmd/app.
type JobManager struct {
	orderTotalsJob *OrderTotalsJob
}

func NewJobManager(orderTotalsJob *OrderTotalsJob) *JobManager {
	return &JobManager{
		orderTotalsJob: orderTotalsJob,
	}
}

// StartAll registers and starts every job. A bad cron expression surfaces here.
func (jm *JobManager) StartAll() error {
	if err := jm.orderTotalsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order totals job: %w", err)
	}
	return nil
}

// StopAll blocks until running reconciliations return.
func (jm *JobManager) StopAll() {
	jm.orderTotalsJob.Stop()
}
