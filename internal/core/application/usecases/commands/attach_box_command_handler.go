package commands

import (
	"context"
	"errors"
	"fmt"

	"lensdispatch/internal/core/ports"
	"lensdispatch/internal/pkg/errs"
)

// AttachBoxCommandHandler handles manifest changes.
// A box must be Packed to travel, may only sit on one open shipment at a
// time, and the manifest is sealed once the shipment leaves Created.
type AttachBoxCommandHandler struct {
	uowFactory ManifestUoWFactory
	activity   ports.ActivityLog
}

// NewAttachBoxCommandHandler creates a handler for manifest changes.
func NewAttachBoxCommandHandler(uowFactory ManifestUoWFactory, activity ports.ActivityLog) AttachBoxCommandHandler {
	return AttachBoxCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the attach box command.
func (h *AttachBoxCommandHandler) Handle(ctx context.Context, cmd AttachBoxCommand) error {
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

	boxEntity, err := uow.BoxRepository().Get(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	if err = h.ensureBoxIsFree(ctx, uow, cmd); err != nil {
		return err
	}

	if err = shipmentEntity.AttachBox(boxEntity); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, shipmentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "shipment", cmd.ShipmentID().String(), "box_attached",
		fmt.Sprintf(`{"box_id":%q}`, cmd.BoxID().String()))
	return nil
}

// ensureBoxIsFree rejects the attach when the box already sits on another
// open shipment.
func (h *AttachBoxCommandHandler) ensureBoxIsFree(ctx context.Context, uow ManifestUoW, cmd AttachBoxCommand) error {
	holder, err := uow.ShipmentRepository().GetOpenContaining(ctx, cmd.BoxID())
	if err != nil {
		var notFound errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	if holder.ID().IsEqual(cmd.ShipmentID()) {
		// The shipment's own duplicate check produces the conflict.
		return nil
	}

	return errs.NewConflictError("shipment_box", cmd.BoxID().String())
}
