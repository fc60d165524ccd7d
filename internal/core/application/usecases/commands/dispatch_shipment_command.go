package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var ErrDispatchShipmentCommandIsNotConstructed = errors.New(
	"DispatchShipmentCommand must be created via NewDispatchShipmentCommand constructor",
)

// DispatchShipmentCommand represents a request to hand a shipment over to
// its courier. Dispatch seals the manifest.
type DispatchShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchShipmentCommand creates a command to dispatch a shipment.
func NewDispatchShipmentCommand(shipmentID kernel.UUID) (DispatchShipmentCommand, error) {
	command := DispatchShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShipmentID(shipmentID); err != nil {
		return DispatchShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchShipmentCommandIsNotConstructed if validation fails.
func (c DispatchShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDispatchShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c DispatchShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DispatchShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}
