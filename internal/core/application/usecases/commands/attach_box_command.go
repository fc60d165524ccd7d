package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var ErrAttachBoxCommandIsNotConstructed = errors.New(
	"AttachBoxCommand must be created via NewAttachBoxCommand constructor",
)

// AttachBoxCommand represents a request to add a packed box to a shipment's
// manifest.
type AttachBoxCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	boxID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachBoxCommand creates a command to attach a box to a shipment.
func NewAttachBoxCommand(shipmentID, boxID kernel.UUID) (AttachBoxCommand, error) {
	command := AttachBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setBoxID(boxID),
	); err != nil {
		return AttachBoxCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttachBoxCommandIsNotConstructed if validation fails.
func (c AttachBoxCommand) Validate() error {
	return c.guard.Validate(ErrAttachBoxCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c AttachBoxCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// BoxID returns the box ID from the command.
func (c AttachBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

func (c *AttachBoxCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *AttachBoxCommand) setBoxID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.boxID = id
	return nil
}
