// Package jobs provides the scheduled background tasks of the escrow ledger,
// built on github.com/robfig/cron/v3. The only job today is the settlement
// sweep, which finalizes delivered orders once their refund window elapses.
package jobs

import (
	"fmt"
	"log/slog"

	"escrow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	settlementSweepJob *SettlementSweepJob
}

// NewJobManager creates a job manager wiring the sweep handler to its
// schedule.
func NewJobManager(
	sweepHandler commands.SweepSettlementsCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementSweepJob: NewSettlementSweepJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementSweepJob.Stop()
}
