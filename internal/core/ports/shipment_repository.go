package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates, including their attached boxes and delivery confirmations.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// Returns errs.ConflictError when a shipment with the same docket
	// number already exists.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// including newly attached boxes and recorded confirmations.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with attached boxes and confirmations.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetOpenContaining retrieves the open (not yet Delivered) shipment the
	// given box is attached to. Returns errs.ObjectNotFoundError when the
	// box is not on any open shipment; a box may only ever be on one.
	GetOpenContaining(ctx context.Context, boxID kernel.UUID) (*shipment.Shipment, error)
}
