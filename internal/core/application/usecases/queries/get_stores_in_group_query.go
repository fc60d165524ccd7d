// Package queries contains read operations that bypass the domain model
// and read the database directly. Each query is a constructor-validated
// struct with a handler that runs raw SQL over the GORM connection.
package queries

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrGetStoresInGroupQueryIsNotConstructed = errors.New(
		"GetStoresInGroupQuery must be created via NewGetStoresInGroupQuery constructor",
	)
)

// GetStoresInGroupQuery retrieves every store that shares one delivery group.
// Stores land in the same group when their normalized addresses collapse to
// the same fingerprint, so this is the "who else gets boxes at this address"
// question.
//
// Example:
//
//	query, err := NewGetStoresInGroupQuery(groupID)
//	if err != nil {
//	    return err
//	}
//
//	stores, err := handler.Handle(ctx, query)
type GetStoresInGroupQuery struct {
	deliveryGroupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoresInGroupQuery creates a query for the stores of a delivery group.
func NewGetStoresInGroupQuery(deliveryGroupID kernel.UUID) (GetStoresInGroupQuery, error) {
	if err := deliveryGroupID.Validate(); err != nil {
		return GetStoresInGroupQuery{}, err
	}

	return GetStoresInGroupQuery{
		deliveryGroupID: deliveryGroupID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoresInGroupQueryIsNotConstructed if validation fails.
func (q GetStoresInGroupQuery) Validate() error {
	return q.guard.Validate(ErrGetStoresInGroupQueryIsNotConstructed)
}

// DeliveryGroupID returns the delivery group being inspected.
func (q GetStoresInGroupQuery) DeliveryGroupID() kernel.UUID {
	return q.deliveryGroupID
}

// GetStoresInGroupQueryResponse represents one store of a delivery group.
type GetStoresInGroupQueryResponse struct {
	Code       string
	Name       string
	Address    string
	City       string
	State      string
	PostalCode string
	Contact    string
}
