package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
	)
	ErrConfirmedByIsRequired = errors.New("confirmed by is required")
)

// ConfirmDeliveryCommand represents a delivery confirmation reported against
// a shipment. A Received confirmation completes the shipment; an issue
// confirmation flags it for follow-up.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	confirmationID kernel.UUID
	shipmentID     kernel.UUID
	confirmedBy    string
	status         shipment.ConfirmationStatus
	notes          string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to record a delivery confirmation.
// Automatically generates a unique ID for the confirmation.
func NewConfirmDeliveryCommand(
	shipmentID kernel.UUID,
	confirmedBy string,
	status shipment.ConfirmationStatus,
	notes string,
) (ConfirmDeliveryCommand, error) {
	command := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setConfirmationID(kernel.NewUUID()),
		command.setShipmentID(shipmentID),
		command.setConfirmedBy(confirmedBy),
		command.setStatus(status),
		command.setNotes(notes),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ConfirmationID returns the confirmation ID from the command.
func (c ConfirmDeliveryCommand) ConfirmationID() kernel.UUID {
	return c.confirmationID
}

// ShipmentID returns the shipment ID from the command.
func (c ConfirmDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ConfirmedBy returns the confirming actor from the command.
func (c ConfirmDeliveryCommand) ConfirmedBy() string {
	return c.confirmedBy
}

// Status returns the confirmation outcome from the command.
func (c ConfirmDeliveryCommand) Status() shipment.ConfirmationStatus {
	return c.status
}

// Notes returns the free-form notes from the command; may be empty.
func (c ConfirmDeliveryCommand) Notes() string {
	return c.notes
}

func (c *ConfirmDeliveryCommand) setConfirmationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.confirmationID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setConfirmedBy(confirmedBy string) error {
	if confirmedBy == "" {
		return ErrConfirmedByIsRequired
	}

	c.confirmedBy = confirmedBy
	return nil
}

func (c *ConfirmDeliveryCommand) setStatus(status shipment.ConfirmationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *ConfirmDeliveryCommand) setNotes(notes string) error {
	c.notes = notes
	return nil
}
