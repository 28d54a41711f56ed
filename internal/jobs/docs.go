// Package jobs provides scheduled background tasks for the driver service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for shift bookkeeping.
//
// # Available Jobs
//
// 1. ShiftCloseJob - Runs on a configurable daily schedule to close open
// driver sessions and deactivate the drivers that left them behind.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeShiftsHandler, "0 0 * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The shift close job uses a standard five-field cron spec supplied through
// configuration, so operators can align the close with the local business day.
//
// # Error Handling
//
// - Job failures are logged and the schedule keeps running
// - A failed job start is reported to the caller before the process serves traffic
package jobs
