package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/services"
	"lensdispatch/internal/core/ports"
)

// MarkOrderPackedCommandHandler handles the order packed transition.
// After the order is packed the box's membership is re-projected: when every
// remaining order in the box is packed, the box closes.
type MarkOrderPackedCommandHandler struct {
	uowFactory PackingUoWFactory
	ledger     services.PackingLedger
	activity   ports.ActivityLog
}

// NewMarkOrderPackedCommandHandler creates a handler for the packed transition.
func NewMarkOrderPackedCommandHandler(uowFactory PackingUoWFactory, activity ports.ActivityLog) MarkOrderPackedCommandHandler {
	return MarkOrderPackedCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewPackingLedger(),
		activity:   activity,
	}
}

// Handle processes the mark order packed command.
// The order update is flushed before the box membership is re-read so the
// projection sees the new status.
func (h *MarkOrderPackedCommandHandler) Handle(ctx context.Context, cmd MarkOrderPackedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderEntity, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.MarkPacked(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderEntity); err != nil {
		return err
	}

	boxID := orderEntity.Box()
	boxEntity, err := uow.BoxRepository().Get(ctx, *boxID)
	if err != nil {
		return err
	}

	siblings, err := uow.OrderRepository().GetAllInBox(ctx, *boxID)
	if err != nil {
		return err
	}

	closed, err := h.ledger.RefreshBoxStatus(boxEntity, siblings)
	if err != nil {
		return err
	}

	if closed {
		if err = uow.BoxRepository().Update(ctx, boxEntity); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "order", cmd.OrderID().String(), "marked_packed",
		fmt.Sprintf(`{"box_id":%q,"box_closed":%t}`, boxID.String(), closed))
	return nil
}
