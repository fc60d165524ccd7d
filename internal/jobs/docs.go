// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for dispatch tracking.
//
// # Available Jobs
//
// 1. StalePackingJob - Runs hourly to report boxes still in packing past their dispatch date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reportStaleBoxesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep changes no state, so a failed run is logged and retried on the
// next tick. Stale boxes are reported to the audit log on every run until
// they are packed or their box is dispatched.
package jobs
