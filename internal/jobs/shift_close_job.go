package jobs

import (
	"context"
	"log/slog"

	"driverhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ShiftCloseJob runs the end-of-day batch close. Open sessions left behind by
// drivers who forgot to stop their shift are closed and the drivers
// deactivated.
type ShiftCloseJob struct {
	handler commands.CloseExpiredShiftsCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShiftCloseJob creates the batch close job. The cron spec comes from
// configuration so operators can align the close with the local business day.
func NewShiftCloseJob(handler commands.CloseExpiredShiftsCommandHandler, spec string, logger *slog.Logger) *ShiftCloseJob {
	return &ShiftCloseJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger.With("component", "shift_close_job"),
	}
}

// Start schedules the batch close on the configured cron spec.
func (j *ShiftCloseJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewCloseExpiredShiftsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shift close job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shift close job started", "spec", j.spec)
	return nil
}

// Stop stops the batch close job.
func (j *ShiftCloseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shift close job stopped")
}
