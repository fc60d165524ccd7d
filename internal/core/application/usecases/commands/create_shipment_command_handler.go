package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/core/ports"
)

// CreateShipmentCommandHandler handles shipment intake.
// The courier must exist; a duplicate docket number is rejected by the
// repository as ConflictError.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentIntakeUoWFactory
	activity   ports.ActivityLog
}

// NewCreateShipmentCommandHandler creates a handler for shipment intake.
func NewCreateShipmentCommandHandler(uowFactory ShipmentIntakeUoWFactory, activity ports.ActivityLog) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	shipmentEntity, err := shipment.NewShipment(cmd.ShipmentID(), cmd.DocketNumber(), cmd.CourierID(), cmd.ShipmentDate())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, shipmentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "shipment", cmd.ShipmentID().String(), "registered",
		fmt.Sprintf(`{"docket_number":%q,"courier_id":%q}`, cmd.DocketNumber(), cmd.CourierID().String()))
	return nil
}
