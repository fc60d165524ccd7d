package commands

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrDocketNumberIsRequired = errors.New("docket number is required")
	ErrShipmentDateIsRequired = errors.New("shipment date is required")
)

// CreateShipmentCommand represents a request to open a new shipment under a
// courier docket number. Docket numbers are unique across the system.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	docketNumber string
	courierID    kernel.UUID
	shipmentDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// Automatically generates a unique ID for the shipment.
func NewCreateShipmentCommand(docketNumber string, courierID kernel.UUID, shipmentDate time.Time) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(kernel.NewUUID()),
		command.setDocketNumber(docketNumber),
		command.setCourierID(courierID),
		command.setShipmentDate(shipmentDate),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment ID from the command.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DocketNumber returns the courier docket number from the command.
func (c CreateShipmentCommand) DocketNumber() string {
	return c.docketNumber
}

// CourierID returns the courier ID from the command.
func (c CreateShipmentCommand) CourierID() kernel.UUID {
	return c.courierID
}

// ShipmentDate returns the shipment date from the command.
func (c CreateShipmentCommand) ShipmentDate() time.Time {
	return c.shipmentDate
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setDocketNumber(docketNumber string) error {
	if docketNumber == "" {
		return ErrDocketNumberIsRequired
	}

	c.docketNumber = docketNumber
	return nil
}

func (c *CreateShipmentCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateShipmentCommand) setShipmentDate(shipmentDate time.Time) error {
	if shipmentDate.IsZero() {
		return ErrShipmentDateIsRequired
	}

	c.shipmentDate = shipmentDate
	return nil
}
