package ports

import (
	"context"
	"time"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"
)

// BoxRepository defines the persistence contract for box aggregates.
type BoxRepository interface {
	// Add persists a new box aggregate to storage.
	// The box must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *box.Box) error

	// Update persists changes to an existing box aggregate.
	// The box must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *box.Box) error

	// Get retrieves a box aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*box.Box, error)

	// GetAllStalePacking retrieves boxes still in Packing status whose
	// dispatch date is strictly before asOf. Used by the stale-packing
	// watchdog to flag boxes that missed their dispatch window.
	GetAllStalePacking(ctx context.Context, asOf time.Time) ([]*box.Box, error)
}
