package jobs

import (
	"context"
	"time"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultOrderTotalsSchedule runs the reconciliation at the top of every
// hour.
const DefaultOrderTotalsSchedule = "0 0 * * * *"

// OrderTotalsReconciler corrects orders whose stored total no longer
// matches their details and reports how many it changed.
type OrderTotalsReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileOrderTotalsCommand) (int, error)
}

// OrderTotalsJob periodically reconciles order totals with the sum of
// their detail subtotals.
type OrderTotalsJob struct {
	handler  OrderTotalsReconciler
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   logrus.FieldLogger
}

// NewOrderTotalsJob creates the job. An empty schedule falls back to
// DefaultOrderTotalsSchedule; schedules use the six-field cron syntax with
// seconds.
func NewOrderTotalsJob(handler OrderTotalsReconciler, schedule string, logger logrus.FieldLogger) *OrderTotalsJob {
	if schedule == "" {
		schedule = DefaultOrderTotalsSchedule
	}
	return &OrderTotalsJob{
		handler:  handler,
		schedule: schedule,
		timeout:  5 * time.Minute,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.WithField("component", "order_totals_job"),
	}
}

// Run performs one reconciliation pass.
func (j *OrderTotalsJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	start := time.Now()
	fixed, err := j.handler.Handle(ctx, commands.ReconcileOrderTotalsCommand{})
	entry := j.logger.WithFields(logrus.Fields{
		"fixed":       fixed,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Error("Order totals reconciliation failed")
		return
	}
	if fixed > 0 {
		entry.Warn("Order totals reconciled")
		return
	}
	entry.Debug("Order totals are consistent")
}

// Start schedules the job.
func (j *OrderTotalsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Order totals job started")
	return nil
}

// Stop unschedules the job and waits for a running pass to finish.
func (j *OrderTotalsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order totals job stopped")
}
