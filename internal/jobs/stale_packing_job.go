package jobs

import (
	"context"
	"log/slog"
	"time"

	"lensdispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StalePackingJob sweeps for boxes stuck in packing past their dispatch date.
// Runs hourly; a box that misses its dispatch date is an operational problem
// someone needs to chase, not something the system can fix on its own.
type StalePackingJob struct {
	handler commands.ReportStaleBoxesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePackingJob creates a job that reports stale boxes on a schedule.
// Uses ReportStaleBoxesCommandHandler to run the sweep every hour.
func NewStalePackingJob(handler commands.ReportStaleBoxesCommandHandler, logger *slog.Logger) *StalePackingJob {
	return &StalePackingJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_packing_job"),
	}
}

// Start begins the stale packing sweep on an hourly schedule.
func (j *StalePackingJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReportStaleBoxesCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale packing sweep could not be constructed", "error", cmdErr)
			return
		}

		count, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale packing sweep failed", "error", handleErr)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Boxes stuck in packing past their dispatch date", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale packing job started (running hourly)")
	return nil
}

// Stop stops the stale packing job.
func (j *StalePackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale packing job stopped")
}
