package ports

import (
	"context"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return records.
// Returns are append-only; there is no update.
type ReturnRepository interface {
	// Add persists a new return record to storage.
	Add(ctx context.Context, aggregate *returns.Return) error

	// GetAllForOrder retrieves every return recorded against an order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*returns.Return, error)
}
