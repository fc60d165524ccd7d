package commands

import (
	"errors"

	"lensdispatch/internal/pkg/guard"
)

var ErrUpdateStoreAddressCommandIsNotConstructed = errors.New(
	"UpdateStoreAddressCommand must be created via NewUpdateStoreAddressCommand constructor",
)

// UpdateStoreAddressCommand represents a request to relocate a store.
// Relocation re-resolves the delivery group: the store moves to the group
// matching its new address.
type UpdateStoreAddressCommand struct { //nolint:recvcheck //using for validation
	code       string
	address    string
	city       string
	state      string
	postalCode string

	guard guard.ConstructorGuard
}

// NewUpdateStoreAddressCommand creates a command to relocate a store.
// Code and address are required.
func NewUpdateStoreAddressCommand(code, address, city, state, postalCode string) (UpdateStoreAddressCommand, error) {
	command := UpdateStoreAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCode(code),
		command.setAddress(address, city, state, postalCode),
	); err != nil {
		return UpdateStoreAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStoreAddressCommandIsNotConstructed if validation fails.
func (c UpdateStoreAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreAddressCommandIsNotConstructed)
}

// Code returns the store business code from the command.
func (c UpdateStoreAddressCommand) Code() string {
	return c.code
}

// Address returns the new street address from the command.
func (c UpdateStoreAddressCommand) Address() string {
	return c.address
}

// City returns the new city from the command.
func (c UpdateStoreAddressCommand) City() string {
	return c.city
}

// State returns the new state from the command.
func (c UpdateStoreAddressCommand) State() string {
	return c.state
}

// PostalCode returns the new postal code from the command; may be empty.
func (c UpdateStoreAddressCommand) PostalCode() string {
	return c.postalCode
}

func (c *UpdateStoreAddressCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *UpdateStoreAddressCommand) setAddress(address, city, state, postalCode string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	c.city = city
	c.state = state
	c.postalCode = postalCode
	return nil
}
