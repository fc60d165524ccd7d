package shipment

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

// Shipment is the aggregate root for a courier-level grouping of packed
// boxes, tracked from manifest creation through delivery confirmation.
//
// Shipment follows these invariants:
//   - The docket number is the external courier reference, unique system-wide
//   - Boxes may only be attached while the shipment is Created, must be
//     Packed, and appear at most once on the manifest
//   - Status transitions follow the shipment state machine; the delivery
//     confirmation log is append-only and the current status is the latest
//     confirmation's effect
//   - A shipment still in Created cannot be confirmed at all
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// docketNumber is the courier's external reference
	docketNumber string

	// courierID identifies the carrying courier
	courierID kernel.UUID

	// shipmentDate is the date the shipment was manifested
	shipmentDate time.Time

	// status is the current lifecycle state
	status Status

	// boxIDs are the boxes on the manifest, in attachment order
	boxIDs []kernel.UUID

	// confirmations is the append-only delivery confirmation log
	confirmations []*Confirmation

	// guard ensures the shipment was created via a constructor
	guard kernel.ConstructorGuard
}

// NewShipment creates a shipment in Created status with an empty manifest.
func NewShipment(id kernel.UUID, docketNumber string, courierID kernel.UUID, shipmentDate time.Time) (*Shipment, error) {
	s := &Shipment{
		status: Created,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDocketNumber(docketNumber),
		s.setCourier(courierID),
		s.setShipmentDate(shipmentDate),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistent storage, including
// its manifest and confirmation log.
func RestoreShipment(
	id kernel.UUID,
	docketNumber string,
	courierID kernel.UUID,
	shipmentDate time.Time,
	status Status,
	boxIDs []kernel.UUID,
	confirmations []*Confirmation,
) (*Shipment, error) {
	s := &Shipment{
		boxIDs:        boxIDs,
		confirmations: confirmations,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDocketNumber(docketNumber),
		s.setCourier(courierID),
		s.setShipmentDate(shipmentDate),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, c := range confirmations {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Validate ensures the shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// DocketNumber returns the courier's external reference.
func (s *Shipment) DocketNumber() string {
	return s.docketNumber
}

// Courier returns the carrying courier's ID.
func (s *Shipment) Courier() kernel.UUID {
	return s.courierID
}

// ShipmentDate returns the date the shipment was manifested.
func (s *Shipment) ShipmentDate() time.Time {
	return s.shipmentDate
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// IsOpen reports whether the shipment still holds its boxes: any status
// short of Delivered keeps the manifest open, so its boxes cannot be
// attached elsewhere.
func (s *Shipment) IsOpen() bool {
	return !s.status.IsTerminal()
}

// Boxes returns the ids of the boxes on the manifest.
func (s *Shipment) Boxes() []kernel.UUID {
	boxes := make([]kernel.UUID, len(s.boxIDs))
	copy(boxes, s.boxIDs)
	return boxes
}

// Confirmations returns the append-only delivery confirmation log in
// recording order.
func (s *Shipment) Confirmations() []*Confirmation {
	confirmations := make([]*Confirmation, len(s.confirmations))
	copy(confirmations, s.confirmations)
	return confirmations
}

// AttachBox adds a packed box to the manifest.
//
// Preconditions:
//   - the shipment is still Created (the manifest is sealed at dispatch)
//   - the box has reached Packed (an incomplete box cannot be manifested)
//   - the box is not already on this manifest
//
// The caller additionally checks the box is not sitting on another open
// shipment; that is a cross-aggregate lookup owned by the manifest handler.
func (s *Shipment) AttachBox(b *box.Box) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if s.status != Created {
		return errs.NewIllegalTransitionError("shipment", s.id.String(), s.status.String(), Created.String())
	}

	if !b.IsPacked() {
		return errs.NewIllegalTransitionError("box", b.ID().String(), b.Status().String(), box.Packed.String())
	}

	for _, id := range s.boxIDs {
		if id.IsEqual(b.ID()) {
			return errs.NewConflictError("shipment_box", b.ID().String())
		}
	}

	s.boxIDs = append(s.boxIDs, b.ID())
	return nil
}

// Dispatch hands the shipment to the courier. The manifest must hold at
// least one box.
func (s *Shipment) Dispatch() error {
	if len(s.boxIDs) == 0 {
		return errs.NewValueIsRequiredError("boxes")
	}

	return s.transitionTo(Dispatched)
}

// MarkInTransit records courier carriage confirmation. Also the recovery
// path out of Issue Reported once an issue is cleared without delivery.
func (s *Shipment) MarkInTransit() error {
	return s.transitionTo(InTransit)
}

// Confirm appends a delivery confirmation and projects its effect onto the
// shipment status: Received delivers the shipment, an issue outcome marks it
// Issue Reported. Confirmations against a shipment still in Created are
// rejected, and nothing is appended when the projected transition is
// illegal (all-or-nothing).
func (s *Shipment) Confirm(c *Confirmation) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var effect Status
	switch c.Status() {
	case Received:
		effect = Delivered
	case ConfirmationIssue:
		effect = IssueReported
	default:
		return errs.NewValueIsInvalidError("confirmation status")
	}

	if err := s.transitionTo(effect); err != nil {
		return err
	}

	s.confirmations = append(s.confirmations, c)
	return nil
}

func (s *Shipment) transitionTo(next Status) error {
	if !IsLegalTransition(s.status, next) {
		return errs.NewIllegalTransitionError("shipment", s.id.String(), s.status.String(), next.String())
	}

	s.status = next
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setDocketNumber(docketNumber string) error {
	if docketNumber == "" {
		return errs.NewValueIsRequiredError("docketNumber")
	}
	s.docketNumber = docketNumber
	return nil
}

func (s *Shipment) setCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierID", err)
	}
	s.courierID = courierID
	return nil
}

func (s *Shipment) setShipmentDate(shipmentDate time.Time) error {
	if shipmentDate.IsZero() {
		return errs.NewValueIsRequiredError("shipmentDate")
	}
	s.shipmentDate = shipmentDate
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	s.status = status
	return nil
}
