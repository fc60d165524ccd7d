package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/order"
	"lensdispatch/internal/core/domain/services"
	"lensdispatch/internal/core/ports"
)

// PackOrderCommandHandler handles order intake into a box.
// The packing ledger enforces that the order's store and the box share a
// delivery group, and moves a pristine box into Packing on first use.
type PackOrderCommandHandler struct {
	uowFactory PackingUoWFactory
	ledger     services.PackingLedger
	activity   ports.ActivityLog
}

// NewPackOrderCommandHandler creates a handler for order intake.
func NewPackOrderCommandHandler(uowFactory PackingUoWFactory, activity ports.ActivityLog) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     services.NewPackingLedger(),
		activity:   activity,
	}
}

// Handle processes the pack order command.
// Creates the order, assigns it to the box and persists both within one
// transaction.
func (h *PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) error {
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

	storeEntity, err := uow.StoreRepository().Get(ctx, cmd.StoreCode())
	if err != nil {
		return err
	}

	boxEntity, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	orderEntity, err := order.NewOrder(cmd.OrderID(), cmd.CustomerRef(), cmd.StoreCode(), cmd.OrderDate())
	if err != nil {
		return err
	}

	if err = h.ledger.AssignOrderToBox(orderEntity, boxEntity, storeEntity.DeliveryGroup()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.BoxRepository().Update(ctx, boxEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "order", cmd.OrderID().String(), "packed_into_box",
		fmt.Sprintf(`{"box_id":%q,"store_code":%q}`, cmd.BoxID().String(), cmd.StoreCode()))
	return nil
}
