// Package courier contains the Courier reference entity. Couriers are simple
// master data: a unique name and an identifier that shipments and stores
// point at. Name uniqueness is enforced at the storage layer and surfaces as
// a ConflictError on duplicate creation.
package courier

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through NewCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier represents a courier company that carries shipments.
type Courier struct {
	// id is the unique identifier for the courier
	id kernel.UUID

	// name is the courier's display name, unique system-wide
	name string

	// guard ensures the courier was created via the constructor
	guard kernel.ConstructorGuard
}

// NewCourier creates a courier with the given id and name.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistent storage.
func RestoreCourier(id kernel.UUID, name string) (*Courier, error) {
	return NewCourier(id, name)
}

// Validate ensures the courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
