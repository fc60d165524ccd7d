package commands

import (
	"context"

	"lensdispatch/internal/core/ports"
)

// DispatchShipmentCommandHandler handles the dispatch transition.
// A shipment must carry at least one box to leave.
type DispatchShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	activity   ports.ActivityLog
}

// NewDispatchShipmentCommandHandler creates a handler for the dispatch transition.
func NewDispatchShipmentCommandHandler(uowFactory ShipmentUoWFactory, activity ports.ActivityLog) DispatchShipmentCommandHandler {
	return DispatchShipmentCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the dispatch shipment command.
func (h *DispatchShipmentCommandHandler) Handle(ctx context.Context, cmd DispatchShipmentCommand) error {
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

	shipmentEntity, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = shipmentEntity.Dispatch(); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, shipmentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "shipment", cmd.ShipmentID().String(), "dispatched", "{}")
	return nil
}
