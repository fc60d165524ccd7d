package shipment

import (
	"errors"
	"fmt"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrConfirmationIsNotConstructed is returned when a Confirmation instance
// was not created through NewConfirmation or RestoreConfirmation.
var ErrConfirmationIsNotConstructed = errors.New(
	"Confirmation must be created via NewConfirmation or RestoreConfirmation constructor",
)

// ConfirmationStatus is the outcome recorded by a single delivery
// confirmation. Unlike shipment status it has no transitions of its own:
// each confirmation is an immutable observation, and the shipment's current
// status is the latest confirmation's effect.
type ConfirmationStatus int

const (
	// ConfirmationUnknown represents an invalid or undefined outcome.
	ConfirmationUnknown ConfirmationStatus = iota

	// Received records that the destination accepted the shipment.
	Received

	// ConfirmationIssue records that a problem was observed on delivery.
	ConfirmationIssue
)

// Validate checks if the ConfirmationStatus value is valid.
func (s ConfirmationStatus) Validate() error {
	if s != Received && s != ConfirmationIssue {
		return fmt.Errorf("%d is not a valid confirmation status", s)
	}
	return nil
}

// String returns the human-readable name of the confirmation outcome.
func (s ConfirmationStatus) String() string {
	switch s {
	case Received:
		return "Received"
	case ConfirmationIssue:
		return "Issue Reported"
	default:
		return "Unknown"
	}
}

// Confirmation is a child entity of Shipment recording one observed delivery
// outcome at a point in time. The confirmation log is append-only: a
// shipment may accumulate several confirmations, for example a partial issue
// followed by its resolution.
type Confirmation struct {
	// id is the unique identifier for the confirmation
	id kernel.UUID

	// confirmedBy is the opaque identity of whoever recorded the outcome
	confirmedBy string

	// status is the observed outcome
	status ConfirmationStatus

	// notes is a free-form remark accompanying the outcome
	notes string

	// guard ensures the confirmation was created via a constructor
	guard kernel.ConstructorGuard
}

// NewConfirmation creates a delivery confirmation record.
func NewConfirmation(id kernel.UUID, confirmedBy string, status ConfirmationStatus, notes string) (*Confirmation, error) {
	c := &Confirmation{
		notes: notes,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setConfirmedBy(confirmedBy),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreConfirmation reconstructs a confirmation from persistent storage.
func RestoreConfirmation(id kernel.UUID, confirmedBy string, status ConfirmationStatus, notes string) (*Confirmation, error) {
	return NewConfirmation(id, confirmedBy, status, notes)
}

// Validate ensures the confirmation was properly constructed.
func (c *Confirmation) Validate() error {
	if c == nil {
		return ErrConfirmationIsNotConstructed
	}
	return c.guard.Validate(ErrConfirmationIsNotConstructed)
}

// ID returns the confirmation's unique identifier.
func (c *Confirmation) ID() kernel.UUID {
	return c.id
}

// ConfirmedBy returns the opaque identity that recorded the outcome.
func (c *Confirmation) ConfirmedBy() string {
	return c.confirmedBy
}

// Status returns the observed outcome.
func (c *Confirmation) Status() ConfirmationStatus {
	return c.status
}

// Notes returns the free-form remark accompanying the outcome.
func (c *Confirmation) Notes() string {
	return c.notes
}

func (c *Confirmation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Confirmation) setConfirmedBy(confirmedBy string) error {
	if confirmedBy == "" {
		return errs.NewValueIsRequiredError("confirmedBy")
	}
	c.confirmedBy = confirmedBy
	return nil
}

func (c *Confirmation) setStatus(status ConfirmationStatus) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	c.status = status
	return nil
}
