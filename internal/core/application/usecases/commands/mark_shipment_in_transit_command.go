package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var ErrMarkShipmentInTransitCommandIsNotConstructed = errors.New(
	"MarkShipmentInTransitCommand must be created via NewMarkShipmentInTransitCommand constructor",
)

// MarkShipmentInTransitCommand represents a carrier scan reporting the
// shipment on the move. Also used to put a shipment with a reported issue
// back in transit once the issue is being worked.
type MarkShipmentInTransitCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkShipmentInTransitCommand creates a command to mark a shipment in transit.
func NewMarkShipmentInTransitCommand(shipmentID kernel.UUID) (MarkShipmentInTransitCommand, error) {
	command := MarkShipmentInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShipmentID(shipmentID); err != nil {
		return MarkShipmentInTransitCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkShipmentInTransitCommandIsNotConstructed if validation fails.
func (c MarkShipmentInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkShipmentInTransitCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c MarkShipmentInTransitCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *MarkShipmentInTransitCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
