package queries

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrGetOpenShipmentsQueryIsNotConstructed = errors.New(
		"GetOpenShipmentsQuery must be created via NewGetOpenShipmentsQuery constructor",
	)
)

// GetOpenShipmentsQuery retrieves every shipment that has not been delivered
// yet, together with its courier and manifest size. Used by the tracking
// surface to show what is still on the road.
type GetOpenShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenShipmentsQuery creates a query for undelivered shipments.
// This is a parameterless query.
func NewGetOpenShipmentsQuery() GetOpenShipmentsQuery {
	return GetOpenShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenShipmentsQueryIsNotConstructed if validation fails.
func (q GetOpenShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenShipmentsQueryIsNotConstructed)
}

// GetOpenShipmentsQueryResponse represents one undelivered shipment.
type GetOpenShipmentsQueryResponse struct {
	ID           kernel.UUID
	DocketNumber string
	CourierName  string
	ShipmentDate time.Time
	Status       shipment.Status
	BoxCount     int
}
