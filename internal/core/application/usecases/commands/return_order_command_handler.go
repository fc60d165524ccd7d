package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/returns"
	"lensdispatch/internal/core/domain/services"
	"lensdispatch/internal/core/ports"
)

// ReturnOrderCommandHandler handles order returns.
// A return record is appended, the order leaves the flow, and the box it
// occupied is re-projected: remaining packed orders may now close it.
// A box already Packed stays Packed; the returned order's spot travels with
// the box.
type ReturnOrderCommandHandler struct {
	uowFactory ReturnUoWFactory
	ledger     services.PackingLedger
	activity   ports.ActivityLog
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(uowFactory ReturnUoWFactory, activity ports.ActivityLog) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewPackingLedger(),
		activity:   activity,
	}
}

// Handle processes the return order command.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	if err = orderEntity.Return(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderEntity); err != nil {
		return err
	}

	record, err := returns.NewReturn(kernel.NewUUID(), cmd.OrderID(), cmd.Reason(), cmd.ReturnedBy())
	if err != nil {
		return err
	}

	if err = uow.ReturnRepository().Add(ctx, record); err != nil {
		return err
	}

	if boxID := orderEntity.Box(); boxID != nil {
		if err = h.refreshBox(ctx, uow, *boxID); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "order", cmd.OrderID().String(), "returned",
		fmt.Sprintf(`{"returned_by":%q,"reason":%q}`, cmd.ReturnedBy(), cmd.Reason()))
	return nil
}

// refreshBox re-projects the box the returned order occupied.
func (h *ReturnOrderCommandHandler) refreshBox(ctx context.Context, uow ReturnUoW, boxID kernel.UUID) error {
	boxEntity, err := uow.BoxRepository().Get(ctx, boxID)
	if err != nil {
		return err
	}

	siblings, err := uow.OrderRepository().GetAllInBox(ctx, boxID)
	if err != nil {
		return err
	}

	closed, err := h.ledger.RefreshBoxStatus(boxEntity, siblings)
	if err != nil {
		return err
	}

	if closed {
		return uow.BoxRepository().Update(ctx, boxEntity)
	}

	return nil
}
