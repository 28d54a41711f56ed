package jobs

import (
	"fmt"
	"log/slog"

	"driverhub/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shiftCloseJob *ShiftCloseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	closeShiftsHandler commands.CloseExpiredShiftsCommandHandler,
	shiftCloseSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shiftCloseJob: NewShiftCloseJob(closeShiftsHandler, shiftCloseSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shiftCloseJob.Start(); err != nil {
		return fmt.Errorf("failed to start shift close job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shiftCloseJob.Stop()
}
