package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/ports"
	"lensdispatch/internal/pkg/errs"
)

// DeleteStoreCommandHandler handles store removal.
// A store that still has orders on record cannot be removed; the orders keep
// pointing at it for packing and audit history.
type DeleteStoreCommandHandler struct {
	uowFactory DeleteStoreUoWFactory
	activity   ports.ActivityLog
}

// NewDeleteStoreCommandHandler creates a handler for store removal.
func NewDeleteStoreCommandHandler(uowFactory DeleteStoreUoWFactory, activity ports.ActivityLog) DeleteStoreCommandHandler {
	return DeleteStoreCommandHandler{
		uowFactory: uowFactory,
		activity:   activity,
	}
}

// Handle processes the store deletion command.
// Verifies the store exists and is unreferenced before deleting it within
// one transaction.
func (h *DeleteStoreCommandHandler) Handle(ctx context.Context, cmd DeleteStoreCommand) error {
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

	if _, err := uow.StoreRepository().Get(ctx, cmd.Code()); err != nil {
		return err
	}

	referenced, err := uow.OrderRepository().HasAnyForStore(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if referenced {
		return errs.NewConflictError("store", cmd.Code())
	}

	if err = uow.StoreRepository().Delete(ctx, cmd.Code()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "store", cmd.Code(), "deleted",
		fmt.Sprintf(`{"code":%q}`, cmd.Code()))
	return nil
}
