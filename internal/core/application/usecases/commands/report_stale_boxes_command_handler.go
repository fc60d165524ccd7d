package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/ports"
)

// ReportStaleBoxesCommandHandler sweeps for boxes stuck in packing past their
// dispatch date and reports each one to the audit log. The sweep changes no
// state; re-running it reports the same boxes again.
type ReportStaleBoxesCommandHandler struct {
	uowFactory WatchdogUoWFactory
	activity   ports.ActivityLog
}

// NewReportStaleBoxesCommandHandler creates a handler for the stale box sweep.
func NewReportStaleBoxesCommandHandler(uowFactory WatchdogUoWFactory, activity ports.ActivityLog) ReportStaleBoxesCommandHandler {
	return ReportStaleBoxesCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the stale box sweep and returns the number of stale boxes found.
func (h *ReportStaleBoxesCommandHandler) Handle(ctx context.Context, cmd ReportStaleBoxesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staleBoxes, err := uow.BoxRepository().GetAllStalePacking(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, staleBox := range staleBoxes {
		recordActivity(ctx, h.activity, "box", staleBox.ID().String(), "stale_packing",
			fmt.Sprintf(`{"dispatch_date":%q,"delivery_group_id":%q}`,
				staleBox.DispatchDate().Format("2006-01-02"), staleBox.DeliveryGroup().String()))
	}

	return len(staleBoxes), nil
}
