package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var ErrMarkOrderPackedCommandIsNotConstructed = errors.New(
	"MarkOrderPackedCommand must be created via NewMarkOrderPackedCommand constructor",
)

// MarkOrderPackedCommand represents a request to mark a boxed order as packed.
type MarkOrderPackedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPackedCommand creates a command to mark an order packed.
func NewMarkOrderPackedCommand(orderID kernel.UUID) (MarkOrderPackedCommand, error) {
	command := MarkOrderPackedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkOrderPackedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkOrderPackedCommandIsNotConstructed if validation fails.
func (c MarkOrderPackedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPackedCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c MarkOrderPackedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderPackedCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
