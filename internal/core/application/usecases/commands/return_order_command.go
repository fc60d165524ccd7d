package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrReturnOrderCommandIsNotConstructed = errors.New(
		"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
	)
	ErrReturnedByIsRequired = errors.New("returned by is required")
)

// ReturnOrderCommand represents a request to take an order out of the
// dispatch flow. The reason is optional; the actor recording the return is
// not.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	reason     string
	returnedBy string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return an order.
func NewReturnOrderCommand(orderID kernel.UUID, reason, returnedBy string) (ReturnOrderCommand, error) {
	command := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setReason(reason),
		command.setReturnedBy(returnedBy),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReturnOrderCommandIsNotConstructed if validation fails.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the return reason from the command; may be empty.
func (c ReturnOrderCommand) Reason() string {
	return c.reason
}

// ReturnedBy returns the actor recording the return.
func (c ReturnOrderCommand) ReturnedBy() string {
	return c.returnedBy
}

func (c *ReturnOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *ReturnOrderCommand) setReason(reason string) error {
	c.reason = reason
	return nil
}

func (c *ReturnOrderCommand) setReturnedBy(returnedBy string) error {
	if returnedBy == "" {
		return ErrReturnedByIsRequired
	}

	c.returnedBy = returnedBy
	return nil
}
