package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInBox retrieves every order currently assigned to the given box.
	// The packing ledger projects box completion from this set.
	GetAllInBox(ctx context.Context, boxID kernel.UUID) ([]*order.Order, error)

	// HasAnyForStore reports whether at least one order references the
	// given store code. Guards store deletion.
	HasAnyForStore(ctx context.Context, storeCode string) (bool, error)
}
