package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
// Stores are keyed by their business code rather than a surrogate id.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	// Returns errs.ConflictError when a store with the same code exists.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate.
	// The store must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its business code.
	Get(ctx context.Context, code string) (*store.Store, error)

	// GetAllInGroup retrieves every store assigned to the given delivery
	// group. Used to decide whether boxes for the group can be shared.
	GetAllInGroup(ctx context.Context, groupID kernel.UUID) ([]*store.Store, error)

	// Delete removes a store by its business code.
	// Returns errs.ObjectNotFoundError when no such store exists.
	// Callers must verify nothing references the store before deleting.
	Delete(ctx context.Context, code string) error
}
