package commands

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrCodeIsRequired    = errors.New("code is required")
	ErrAddressIsRequired = errors.New("address is required")
)

// CreateStoreCommand represents a request to register a new optical store.
// The store's raw address is carried as-is; the handler resolves it to a
// delivery group before the store is persisted.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	code       string
	name       string
	address    string
	city       string
	state      string
	postalCode string
	contact    string
	courierID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a new store.
// Code, name and address are required; state, postal code, contact and the
// courier assignment are optional.
func NewCreateStoreCommand(
	code, name, address, city, state, postalCode, contact string,
	courierID *kernel.UUID,
) (CreateStoreCommand, error) {
	command := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCode(code),
		command.setName(name),
		command.setAddress(address, city, state, postalCode),
		command.setContact(contact),
		command.setCourierID(courierID),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStoreCommandIsNotConstructed if validation fails.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// Code returns the store business code from the command.
func (c CreateStoreCommand) Code() string {
	return c.code
}

// Name returns the store display name from the command.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Address returns the raw street address from the command.
func (c CreateStoreCommand) Address() string {
	return c.address
}

// City returns the city from the command.
func (c CreateStoreCommand) City() string {
	return c.city
}

// State returns the state from the command.
func (c CreateStoreCommand) State() string {
	return c.state
}

// PostalCode returns the postal code from the command; may be empty.
func (c CreateStoreCommand) PostalCode() string {
	return c.postalCode
}

// Contact returns the contact detail from the command.
func (c CreateStoreCommand) Contact() string {
	return c.contact
}

// Courier returns the optional courier assignment from the command.
func (c CreateStoreCommand) Courier() *kernel.UUID {
	return c.courierID
}

func (c *CreateStoreCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setAddress(address, city, state, postalCode string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	c.city = city
	c.state = state
	c.postalCode = postalCode
	return nil
}

func (c *CreateStoreCommand) setContact(contact string) error {
	c.contact = contact
	return nil
}

func (c *CreateStoreCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	c.courierID = courierID
	return nil
}
