package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/courier"
	"lensdispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier reference
// records.
type CourierRepository interface {
	// Add persists a new courier to storage.
	// Returns errs.ConflictError when a courier with the same name exists.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
