package commands

import (
	"context"
	"fmt"

	"lensdispatch/internal/core/ports"
)

// UpdateStoreAddressCommandHandler handles store relocation.
// The new address is resolved to its delivery group and the store is moved
// atomically; boxes already packed for the old group are unaffected.
type UpdateStoreAddressCommandHandler struct {
	uowFactory StoreUoWFactory
	resolver   DeliveryGroupResolver
	activity   ports.ActivityLog
}

// NewUpdateStoreAddressCommandHandler creates a handler for store relocation.
func NewUpdateStoreAddressCommandHandler(
	uowFactory StoreUoWFactory,
	resolver DeliveryGroupResolver,
	activity ports.ActivityLog,
) UpdateStoreAddressCommandHandler {
	return UpdateStoreAddressCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		activity:   activity,
	}
}

// Handle processes the store relocation command.
func (h *UpdateStoreAddressCommandHandler) Handle(ctx context.Context, cmd UpdateStoreAddressCommand) error {
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

	storeEntity, err := uow.StoreRepository().Get(ctx, cmd.Code())
	if err != nil {
		return err
	}

	groupID, err := h.resolver.Resolve(ctx, uow.DeliveryGroupRepository(), cmd.Address(), cmd.City(), cmd.PostalCode())
	if err != nil {
		return err
	}

	if err = storeEntity.RelocateTo(cmd.Address(), cmd.City(), cmd.State(), cmd.PostalCode(), groupID); err != nil {
		return err
	}

	if err = uow.StoreRepository().Update(ctx, storeEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordActivity(ctx, h.activity, "store", cmd.Code(), "relocated",
		fmt.Sprintf(`{"delivery_group_id":%q}`, groupID.String()))
	return nil
}
