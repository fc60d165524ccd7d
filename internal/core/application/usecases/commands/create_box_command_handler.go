package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/ports"
)

// CreateBoxCommandHandler handles the business logic for opening a new box.
// The target delivery group must already exist; boxes are pinned to one
// group for their whole lifetime.
type CreateBoxCommandHandler struct {
	uowFactory BoxUoWFactory
	activity   ports.ActivityLog
}

// NewCreateBoxCommandHandler creates a handler for box creation.
func NewCreateBoxCommandHandler(uowFactory BoxUoWFactory, activity ports.ActivityLog) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the box creation command.
// Verifies the delivery group exists and persists the new box in Pending status.
func (h *CreateBoxCommandHandler) Handle(ctx context.Context, cmd CreateBoxCommand) error {
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

	if _, err := uow.DeliveryGroupRepository().Get(ctx, cmd.DeliveryGroup()); err != nil {
		return err
	}

	boxEntity, err := box.NewBox(cmd.BoxID(), cmd.DispatchDate(), cmd.DeliveryGroup())
	if err != nil {
		return err
	}

	if err = uow.BoxRepository().Add(ctx, boxEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "box", cmd.BoxID().String(), "opened",
		fmt.Sprintf(`{"delivery_group_id":%q}`, cmd.DeliveryGroup().String()))
	return nil
}
