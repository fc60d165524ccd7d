package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/domain/model/store"
	"lensdispatch/internal/core/ports"
)

// CreateStoreCommandHandler handles the business logic for store registration.
// The store's address is resolved to a delivery group inside the same
// transaction, creating the group if the address has never been seen.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
	resolver   DeliveryGroupResolver
	activity   ports.ActivityLog
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(
	uowFactory StoreUoWFactory,
	resolver DeliveryGroupResolver,
	activity ports.ActivityLog,
) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		activity:   activity,
	}
}

// Handle processes the store creation command.
// Verifies the optional courier reference, resolves the delivery group and
// persists the store within one transaction.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	if courierID := cmd.Courier(); courierID != nil {
		if _, err := uow.CourierRepository().Get(ctx, *courierID); err != nil {
			return err
		}
	}

	groupID, err := h.resolver.Resolve(ctx, uow.DeliveryGroupRepository(), cmd.Address(), cmd.City(), cmd.PostalCode())
	if err != nil {
		return err
	}

	storeEntity, err := store.NewStore(
		cmd.Code(), cmd.Name(), cmd.Address(), cmd.City(), cmd.State(), cmd.PostalCode(), cmd.Contact(),
		cmd.Courier(), groupID,
	)
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, storeEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "store", cmd.Code(), "registered",
		fmt.Sprintf(`{"delivery_group_id":%q}`, groupID.String()))
	return nil
}
