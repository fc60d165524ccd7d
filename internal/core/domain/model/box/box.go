package box

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrBoxIsNotConstructed is returned when a Box instance was not created
// through NewBox or RestoreBox.
var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox or RestoreBox constructor")

// Box represents a physical dispatch container holding orders bound for a
// single delivery group. A box is created once packing begins for a
// destination.
//
// Box follows these invariants:
//   - The delivery group is fixed at creation; boxes never move between groups
//   - Status moves forward only: Pending -> Packing -> Packed
//   - A Packed box accepts no further orders (append-only completion)
//   - Status is kept consistent with the orders packed into the box by the
//     packing ledger projection, never written independently
type Box struct {
	// id is the unique identifier for the box
	id kernel.UUID

	// dispatchDate is the date the box is scheduled to leave
	dispatchDate time.Time

	// deliveryGroupID is the destination group, immutable after creation
	deliveryGroupID kernel.UUID

	// status is the current packing lifecycle state
	status Status

	// guard ensures the box was created via a constructor
	guard kernel.ConstructorGuard
}

// NewBox creates a box for a delivery group in Pending status.
func NewBox(id kernel.UUID, dispatchDate time.Time, deliveryGroupID kernel.UUID) (*Box, error) {
	b := &Box{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setDispatchDate(dispatchDate),
		b.setDeliveryGroup(deliveryGroupID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBox reconstructs a box from persistent storage with its persisted
// status.
func RestoreBox(id kernel.UUID, dispatchDate time.Time, deliveryGroupID kernel.UUID, status Status) (*Box, error) {
	b := &Box{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setDispatchDate(dispatchDate),
		b.setDeliveryGroup(deliveryGroupID),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the box was properly constructed.
func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// IsEqual compares two boxes by their unique identifiers.
func (b *Box) IsEqual(other *Box) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the box's unique identifier.
func (b *Box) ID() kernel.UUID {
	return b.id
}

// DispatchDate returns the scheduled dispatch date.
func (b *Box) DispatchDate() time.Time {
	return b.dispatchDate
}

// DeliveryGroup returns the destination delivery group id.
func (b *Box) DeliveryGroup() kernel.UUID {
	return b.deliveryGroupID
}

// Status returns the current packing status.
func (b *Box) Status() Status {
	return b.status
}

// IsPacked reports whether the box has completed packing.
func (b *Box) IsPacked() bool {
	return b.status == Packed
}

// ValidateAcceptOrder checks that the box can still take new orders.
// Packed boxes are append-only complete and reject further assignment.
func (b *Box) ValidateAcceptOrder() error {
	if b.status == Packed {
		return errs.NewIllegalTransitionError("box", b.id.String(), b.status.String(), Packing.String())
	}
	return nil
}

// StartPacking moves the box from Pending to Packing. Called by the packing
// ledger when the first order is assigned to the box.
func (b *Box) StartPacking() error {
	return b.transitionTo(Packing)
}

// MarkPacked moves the box from Packing to Packed. Called by the packing
// ledger once every non-returned order in the box has been packed.
func (b *Box) MarkPacked() error {
	return b.transitionTo(Packed)
}

func (b *Box) transitionTo(next Status) error {
	if !IsLegalTransition(b.status, next) {
		return errs.NewIllegalTransitionError("box", b.id.String(), b.status.String(), next.String())
	}

	b.status = next
	return nil
}

func (b *Box) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Box) setDispatchDate(dispatchDate time.Time) error {
	if dispatchDate.IsZero() {
		return errs.NewValueIsRequiredError("dispatchDate")
	}
	b.dispatchDate = dispatchDate
	return nil
}

func (b *Box) setDeliveryGroup(deliveryGroupID kernel.UUID) error {
	if err := deliveryGroupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryGroupID", err)
	}
	b.deliveryGroupID = deliveryGroupID
	return nil
}

func (b *Box) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	b.status = status
	return nil
}
