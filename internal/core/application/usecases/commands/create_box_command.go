package commands

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrCreateBoxCommandIsNotConstructed = errors.New(
		"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
	)
	ErrDispatchDateIsRequired = errors.New("dispatch date is required")
)

// CreateBoxCommand represents a request to open a new packing box for a
// delivery group on a given dispatch date.
type CreateBoxCommand struct { //nolint:recvcheck //using for validation
	boxID           kernel.UUID
	dispatchDate    time.Time
	deliveryGroupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateBoxCommand creates a command to open a new box.
// Automatically generates a unique ID for the box.
func NewCreateBoxCommand(dispatchDate time.Time, deliveryGroupID kernel.UUID) (CreateBoxCommand, error) {
	command := CreateBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBoxID(kernel.NewUUID()),
		command.setDispatchDate(dispatchDate),
		command.setDeliveryGroupID(deliveryGroupID),
	); err != nil {
		return CreateBoxCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBoxCommandIsNotConstructed if validation fails.
func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

// BoxID returns the box ID from the command.
func (c CreateBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

// DispatchDate returns the planned dispatch date from the command.
func (c CreateBoxCommand) DispatchDate() time.Time {
	return c.dispatchDate
}

// DeliveryGroup returns the delivery group ID from the command.
func (c CreateBoxCommand) DeliveryGroup() kernel.UUID {
	return c.deliveryGroupID
}

func (c *CreateBoxCommand) setBoxID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.boxID = id
	return nil
}

func (c *CreateBoxCommand) setDispatchDate(dispatchDate time.Time) error {
	if dispatchDate.IsZero() {
		return ErrDispatchDateIsRequired
	}

	c.dispatchDate = dispatchDate
	return nil
}

func (c *CreateBoxCommand) setDeliveryGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryGroupID = id
	return nil
}
