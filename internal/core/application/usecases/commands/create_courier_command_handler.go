package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/courier"
	"lensdispatch/internal/core/ports"
)

// CreateCourierCommandHandler handles the business logic for courier registration.
// Duplicate courier names are rejected by the repository as ConflictError.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	activity   ports.ActivityLog
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, activity ports.ActivityLog) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the courier creation command.
// Creates a new courier entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "courier", cmd.CourierID().String(), "registered",
		fmt.Sprintf(`{"name":%q}`, cmd.Name()))
	return nil
}
