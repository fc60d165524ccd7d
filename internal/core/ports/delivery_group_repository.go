// Package ports defines repository, cache and audit interfaces for the
// dispatch domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"
)

// DeliveryGroupRepository defines the persistence contract for delivery
// group aggregates. Groups are append-only: they are created when the first
// store at an address appears and are never updated or deleted.
type DeliveryGroupRepository interface {
	// Add persists a new delivery group.
	// Returns errs.ConflictError when a group with the same address
	// fingerprint already exists; callers resolving a creation race are
	// expected to re-read by fingerprint.
	Add(ctx context.Context, aggregate *deliverygroup.DeliveryGroup) error

	// Get retrieves a delivery group by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deliverygroup.DeliveryGroup, error)

	// GetByFingerprint retrieves the delivery group for a normalized address
	// fingerprint. Returns errs.ObjectNotFoundError when no store has ever
	// registered that address.
	GetByFingerprint(ctx context.Context, fingerprint string) (*deliverygroup.DeliveryGroup, error)
}
