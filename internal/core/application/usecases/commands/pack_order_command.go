package commands

import (
	"errors"
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/guard"
)

var (
	ErrPackOrderCommandIsNotConstructed = errors.New(
		"PackOrderCommand must be created via NewPackOrderCommand constructor",
	)
	ErrCustomerRefIsRequired = errors.New("customer reference is required")
	ErrStoreCodeIsRequired   = errors.New("store code is required")
	ErrOrderDateIsRequired   = errors.New("order date is required")
)

// PackOrderCommand represents a request to register an order and place it
// into a box in one step. The order's store and the box must belong to the
// same delivery group.
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerRef string
	storeCode   string
	boxID       kernel.UUID
	orderDate   time.Time

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command to register and box an order.
// Automatically generates a unique ID for the order.
func NewPackOrderCommand(customerRef, storeCode string, boxID kernel.UUID, orderDate time.Time) (PackOrderCommand, error) {
	command := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setCustomerRef(customerRef),
		command.setStoreCode(storeCode),
		command.setBoxID(boxID),
		command.setOrderDate(orderDate),
	); err != nil {
		return PackOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPackOrderCommandIsNotConstructed if validation fails.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c PackOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the customer reference from the command.
func (c PackOrderCommand) CustomerRef() string {
	return c.customerRef
}

// StoreCode returns the originating store code from the command.
func (c PackOrderCommand) StoreCode() string {
	return c.storeCode
}

// BoxID returns the target box ID from the command.
func (c PackOrderCommand) BoxID() kernel.UUID {
	return c.boxID
}

// OrderDate returns the order date from the command.
func (c PackOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *PackOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *PackOrderCommand) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return ErrCustomerRefIsRequired
	}

	c.customerRef = customerRef
	return nil
}

func (c *PackOrderCommand) setStoreCode(storeCode string) error {
	if storeCode == "" {
		return ErrStoreCodeIsRequired
	}

	c.storeCode = storeCode
	return nil
}

func (c *PackOrderCommand) setBoxID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.boxID = id
	return nil
}

func (c *PackOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return ErrOrderDateIsRequired
	}

	c.orderDate = orderDate
	return nil
}
