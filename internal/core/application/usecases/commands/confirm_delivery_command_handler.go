package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/core/ports"
)

// ConfirmDeliveryCommandHandler handles delivery confirmations.
// The shipment aggregate records the confirmation and projects its own
// status from the outcome; confirmations against a shipment still in
// Created are rejected by the aggregate.
type ConfirmDeliveryCommandHandler struct {
	uowFactory ShipmentUoWFactory
	activity   ports.ActivityLog
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory ShipmentUoWFactory, activity ports.ActivityLog) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the confirm delivery command.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	confirmation, err := shipment.NewConfirmation(cmd.ConfirmationID(), cmd.ConfirmedBy(), cmd.Status(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = shipmentEntity.Confirm(confirmation); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, shipmentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "shipment", cmd.ShipmentID().String(), "delivery_confirmed",
		fmt.Sprintf(`{"status":%q,"confirmed_by":%q}`, cmd.Status().String(), cmd.ConfirmedBy()))
	return nil
}
