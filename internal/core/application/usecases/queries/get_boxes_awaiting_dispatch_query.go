package queries

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrGetBoxesAwaitingDispatchQueryIsNotConstructed = errors.New(
		"GetBoxesAwaitingDispatchQuery must be created via NewGetBoxesAwaitingDispatchQuery constructor",
	)
)

// GetBoxesAwaitingDispatchQuery retrieves packed boxes that are not on any
// open shipment. These are the boxes ready to be handed to a courier.
type GetBoxesAwaitingDispatchQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBoxesAwaitingDispatchQuery creates a query for dispatch-ready boxes.
// This is a parameterless query.
func NewGetBoxesAwaitingDispatchQuery() GetBoxesAwaitingDispatchQuery {
	return GetBoxesAwaitingDispatchQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBoxesAwaitingDispatchQueryIsNotConstructed if validation fails.
func (q GetBoxesAwaitingDispatchQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxesAwaitingDispatchQueryIsNotConstructed)
}

// GetBoxesAwaitingDispatchQueryResponse represents one dispatch-ready box.
type GetBoxesAwaitingDispatchQueryResponse struct {
	ID              kernel.UUID
	DispatchDate    time.Time
	DeliveryGroupID kernel.UUID
}
