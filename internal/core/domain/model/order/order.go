package order

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder constructors. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsNotInBox is returned when an order is marked packed before it
	// has been assigned to a box.
	ErrOrderIsNotInBox = errors.New("order is not assigned to a box")
)

// Order represents a single lens order placed through a store. It is the
// aggregate that tracks the order from creation through packing into a box,
// or out of the flow entirely via a return.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer reference and store code
//   - Status transitions follow the Pending -> Packed / -> Returned machine
//   - An order can only be packed after it has been assigned to a box
//   - The owning box must share the delivery group of the order's store;
//     that cross-aggregate rule is enforced by the packing ledger
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerRef is the opaque customer reference from the store system
	customerRef string

	// storeCode identifies the store the order was placed through
	storeCode string

	// boxID is the box the order is packed into (nil until assignment)
	boxID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// orderDate is the date the order was placed
	orderDate time.Time

	// guard ensures the order was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOrder creates a new Order in Pending status, not yet assigned to a box.
func NewOrder(id kernel.UUID, customerRef, storeCode string, orderDate time.Time) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setStoreCode(storeCode),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage, including its
// status and box assignment.
func RestoreOrder(
	id kernel.UUID,
	customerRef, storeCode string,
	boxID *kernel.UUID,
	status Status,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setStoreCode(storeCode),
		o.setBox(boxID),
		o.setStatus(status),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerRef returns the opaque customer reference for the order.
func (o *Order) CustomerRef() string {
	return o.customerRef
}

// StoreCode returns the code of the store the order was placed through.
func (o *Order) StoreCode() string {
	return o.storeCode
}

// Box returns the ID of the box the order is packed into.
// Returns nil if the order has not been assigned to a box.
func (o *Order) Box() *kernel.UUID {
	return o.boxID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// IsReturned reports whether the order has left the packing flow.
// Returned orders are excluded from box completeness accounting.
func (o *Order) IsReturned() bool {
	return o.status == Returned
}

// AssignToBox places the order into a box. Only Pending orders can be
// assigned; reassignment to a different box is allowed while still Pending.
// The packing ledger verifies the box and the order's store share a delivery
// group before calling this.
func (o *Order) AssignToBox(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	if o.status != Pending {
		return errs.NewIllegalTransitionError("order", o.id.String(), o.status.String(), Pending.String())
	}

	o.boxID = &boxID
	return nil
}

// MarkPacked transitions the order to Packed. The order must be assigned to
// a box first.
func (o *Order) MarkPacked() error {
	if o.boxID == nil {
		return ErrOrderIsNotInBox
	}

	return o.transitionTo(Packed)
}

// Return transitions the order to Returned. Permitted from Pending or
// Packed; Returned is terminal. Returning a packed order does not revert
// its box; an already-Packed box stays Packed.
func (o *Order) Return() error {
	return o.transitionTo(Returned)
}

func (o *Order) transitionTo(next Status) error {
	if !IsLegalTransition(o.status, next) {
		return errs.NewIllegalTransitionError("order", o.id.String(), o.status.String(), next.String())
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return errs.NewValueIsRequiredError("customerRef")
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setStoreCode(storeCode string) error {
	if storeCode == "" {
		return errs.NewValueIsRequiredError("storeCode")
	}
	o.storeCode = storeCode
	return nil
}

func (o *Order) setBox(boxID *kernel.UUID) error {
	if boxID == nil {
		return nil
	}
	if err := boxID.Validate(); err != nil {
		return err
	}

	o.boxID = boxID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	o.status = status
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}
