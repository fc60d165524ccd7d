// Package returns contains the Return record: an append-only log entry tied
// to one order, written when the order leaves the packing flow. Return
// records are never updated or deleted; the only contract with the intake
// that creates them is that the referenced order exists.
package returns

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrReturnIsNotConstructed is returned when a Return instance was not
// created through NewReturn.
var ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")

// Return records why and by whom an order was returned.
type Return struct {
	// id is the unique identifier for the return record
	id kernel.UUID

	// orderID is the returned order
	orderID kernel.UUID

	// reason is the free-form return reason
	reason string

	// returnedBy is the opaque identity that recorded the return
	returnedBy string

	// guard ensures the record was created via the constructor
	guard kernel.ConstructorGuard
}

// NewReturn creates a return record for an order.
func NewReturn(id, orderID kernel.UUID, reason, returnedBy string) (*Return, error) {
	r := &Return{
		reason: reason,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrder(orderID),
		r.setReturnedBy(returnedBy),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReturn reconstructs a return record from persistent storage.
func RestoreReturn(id, orderID kernel.UUID, reason, returnedBy string) (*Return, error) {
	return NewReturn(id, orderID, reason, returnedBy)
}

// Validate ensures the record was properly constructed.
func (r *Return) Validate() error {
	if r == nil {
		return ErrReturnIsNotConstructed
	}
	return r.guard.Validate(ErrReturnIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// Order returns the returned order's id.
func (r *Return) Order() kernel.UUID {
	return r.orderID
}

// Reason returns the free-form return reason.
func (r *Return) Reason() string {
	return r.reason
}

// ReturnedBy returns the opaque identity that recorded the return.
func (r *Return) ReturnedBy() string {
	return r.returnedBy
}

func (r *Return) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Return) setOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Return) setReturnedBy(returnedBy string) error {
	if returnedBy == "" {
		return errs.NewValueIsRequiredError("returnedBy")
	}
	r.returnedBy = returnedBy
	return nil
}
