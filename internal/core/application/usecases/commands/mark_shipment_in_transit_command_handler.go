package commands

import (
	"context"

	"lensdispatch/internal/core/ports"
)

// MarkShipmentInTransitCommandHandler handles the in-transit transition.
type MarkShipmentInTransitCommandHandler struct {
	uowFactory ShipmentUoWFactory
	activity   ports.ActivityLog
}

// NewMarkShipmentInTransitCommandHandler creates a handler for the in-transit transition.
func NewMarkShipmentInTransitCommandHandler(uowFactory ShipmentUoWFactory, activity ports.ActivityLog) MarkShipmentInTransitCommandHandler {
	return MarkShipmentInTransitCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the mark shipment in transit command.
func (h *MarkShipmentInTransitCommandHandler) Handle(ctx context.Context, cmd MarkShipmentInTransitCommand) error {
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

	if err = shipmentEntity.MarkInTransit(); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, shipmentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "shipment", cmd.ShipmentID().String(), "in_transit", "{}")
	return nil
}
