package jobs

import (
	"context"
	"errors"
	"log/slog"

	"escrow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SettlementSweepJob periodically closes delivered orders whose refund window
// elapsed, crediting the owner settlement balance. The schedule is a standard
// cron expression supplied by configuration.
type SettlementSweepJob struct {
	handler  commands.SweepSettlementsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSettlementSweepJob creates the sweep job with the given cron schedule.
func NewSettlementSweepJob(
	handler commands.SweepSettlementsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SettlementSweepJob {
	return &SettlementSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "settlement_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *SettlementSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepSettlementsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// an empty sweep is the normal case, not a failure
			if !errors.Is(err, commands.ErrNoSettleableOrders) {
				j.logger.ErrorContext(ctx, "Settlement sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *SettlementSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement sweep job stopped")
}
