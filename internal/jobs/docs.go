// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderTotalsJob - recomputes the total of every live order whose stored
// total differs from the sum of its detail subtotals
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	job := jobs.NewOrderTotalsJob(&reconcileHandler, cfg.ReconcileSchedule, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("Failed to start jobs: ", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first. The default "0 0 * * * *" runs at
// the top of every hour. A pass that is still running when the next one is
// due causes that tick to be skipped.
//
// # Error Handling
//
// Failures are logged and the job keeps its schedule. Corrections are logged
// at warning level since they indicate totals that drifted.
package jobs
