package queries

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
	"lensdispatch/internal/pkg/guard"
)

var ErrGetStoreQueryIsNotConstructed = errors.New(
	"GetStoreQuery must be created via NewGetStoreQuery constructor",
)

// GetStoreQuery retrieves a single store by its business code, including the
// delivery group its address resolved to.
type GetStoreQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetStoreQuery creates a query for one store.
func NewGetStoreQuery(code string) (GetStoreQuery, error) {
	if code == "" {
		return GetStoreQuery{}, errs.NewValueIsRequiredError("code")
	}

	return GetStoreQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreQueryIsNotConstructed if validation fails.
func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

// Code returns the store business code being looked up.
func (q GetStoreQuery) Code() string {
	return q.code
}

// GetStoreQueryResponse represents one store record.
type GetStoreQueryResponse struct {
	Code            string
	Name            string
	Address         string
	City            string
	State           string
	PostalCode      string
	Contact         string
	DeliveryGroupID kernel.UUID
}
