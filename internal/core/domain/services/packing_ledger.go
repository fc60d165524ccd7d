package services

import (
	"fmt"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/order"
	"lensdispatch/internal/pkg/errs"
)

// PackingLedger is the domain service that keeps a box's status consistent
// with the orders packed into it. Box status is a projection of order state
// and is never written independently: every assignment, packing or return of
// an order goes through the ledger so the box can be re-projected in the
// same transaction.
//
// Business rules:
//   - An order may only be packed into a box of its store's delivery group
//   - A Packed box accepts no further orders
//   - A box leaves Pending when its first order is assigned
//   - A box becomes Packed once every non-returned order in it is packed,
//     with at least one such order remaining
//   - Packed is sticky: a later return does not regress the box
//
// Example usage:
//
//	ledger := services.NewPackingLedger()
//	if err := ledger.AssignOrderToBox(o, b, storeGroupID); err != nil {
//	    return err
//	}
//	// ... later, after o.MarkPacked():
//	closed, err := ledger.RefreshBoxStatus(b, ordersInBox)
type PackingLedger struct{}

// NewPackingLedger creates a new PackingLedger instance.
func NewPackingLedger() PackingLedger {
	return PackingLedger{}
}

// AssignOrderToBox places an order into a box, enforcing the cross-group
// integrity rule: the order's store and the box must share a delivery group.
// The first assignment moves the box from Pending to Packing.
//
// Parameters:
//   - o: the order to assign (must be Pending)
//   - b: the destination box (must not be Packed)
//   - storeGroupID: the delivery group resolved for the order's store
//
// Returns an IntegrityError on a cross-group assignment, an
// IllegalTransitionError when the box or order state forbids assignment.
func (PackingLedger) AssignOrderToBox(o *order.Order, b *box.Box, storeGroupID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}

	if !b.DeliveryGroup().IsEqual(storeGroupID) {
		return errs.NewIntegrityErrorWithCause(
			"order.box",
			fmt.Errorf("store %s resolves to delivery group %s but box %s belongs to group %s",
				o.StoreCode(), storeGroupID, b.ID(), b.DeliveryGroup()),
		)
	}

	if err := b.ValidateAcceptOrder(); err != nil {
		return err
	}

	if err := o.AssignToBox(b.ID()); err != nil {
		return err
	}

	if b.Status() == box.Pending {
		return b.StartPacking()
	}

	return nil
}

// RefreshBoxStatus re-projects the box's status from the orders currently
// assigned to it. Call it inside the transaction that changed any of those
// orders.
//
// Returns true when the projection closed the box (Packing -> Packed).
// A box whose non-returned orders have all been returned stays in Packing:
// completion requires at least one packed order remaining in the box.
func (PackingLedger) RefreshBoxStatus(b *box.Box, orders []*order.Order) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}

	// Packed is sticky; nothing to re-project.
	if b.IsPacked() {
		return false, nil
	}

	remaining := 0
	packed := 0
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return false, err
		}
		if o.Box() == nil || !o.Box().IsEqual(b.ID()) {
			return false, errs.NewIntegrityErrorWithCause(
				"box.orders",
				fmt.Errorf("order %s is not assigned to box %s", o.ID(), b.ID()),
			)
		}

		if o.IsReturned() {
			continue
		}
		remaining++
		if o.Status() == order.Packed {
			packed++
		}
	}

	if b.Status() != box.Packing || remaining == 0 || packed != remaining {
		return false, nil
	}

	if err := b.MarkPacked(); err != nil {
		return false, err
	}

	return true, nil
}
