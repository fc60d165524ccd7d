package deliverygroup

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrDeliveryGroupIsNotConstructed is returned when a DeliveryGroup instance
// was not created through NewDeliveryGroup or RestoreDeliveryGroup.
var ErrDeliveryGroupIsNotConstructed = errors.New(
	"DeliveryGroup must be created via NewDeliveryGroup or RestoreDeliveryGroup constructor",
)

// DeliveryGroup represents a deduplicated physical destination shared by one
// or more stores whose normalized address and postal code are identical.
//
// DeliveryGroup follows these invariants:
//   - The fingerprint is a pure function of (address, postal code): the same
//     normalized input always maps to the same group, and two groups never
//     share a fingerprint
//   - The stored address text is the first writer's text; later resolutions
//     of the same fingerprint do not rewrite it
//   - Groups are created lazily on first store reference and never deleted,
//     so boxes always retain a valid group
type DeliveryGroup struct {
	// id is the unique identifier for the group
	id kernel.UUID

	// fingerprint is the deduplication key, unique system-wide
	fingerprint string

	// fullAddress is the address text as first written
	fullAddress string

	// city is the destination city as first written
	city string

	// postalCode is the destination postal code as first written
	postalCode string

	// guard ensures the group was created via a constructor
	guard kernel.ConstructorGuard
}

// NewDeliveryGroup creates a delivery group for a destination that has no
// group yet. The fingerprint is computed from the normalized address and
// postal code; the raw address text is retained verbatim for display.
//
// Returns a validation error if the id is invalid or the address is empty.
func NewDeliveryGroup(id kernel.UUID, fullAddress, city, postalCode string) (*DeliveryGroup, error) {
	group := &DeliveryGroup{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		group.setID(id),
		group.setAddress(fullAddress, city, postalCode),
	); err != nil {
		return nil, err
	}

	group.fingerprint = kernel.NewNormalizedAddress(fullAddress, postalCode).Fingerprint()
	return group, nil
}

// RestoreDeliveryGroup reconstructs a delivery group from persistent storage,
// trusting the persisted fingerprint rather than recomputing it. The address
// text on a group is the first writer's text and is deliberately not derived
// from the normalized form.
func RestoreDeliveryGroup(id kernel.UUID, fingerprint, fullAddress, city, postalCode string) (*DeliveryGroup, error) {
	group := &DeliveryGroup{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		group.setID(id),
		group.setAddress(fullAddress, city, postalCode),
		group.setFingerprint(fingerprint),
	); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate ensures the group was properly constructed.
func (g *DeliveryGroup) Validate() error {
	if g == nil {
		return ErrDeliveryGroupIsNotConstructed
	}
	return g.guard.Validate(ErrDeliveryGroupIsNotConstructed)
}

// IsEqual compares two delivery groups by their unique identifiers.
func (g *DeliveryGroup) IsEqual(other *DeliveryGroup) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the group's unique identifier.
func (g *DeliveryGroup) ID() kernel.UUID {
	return g.id
}

// Fingerprint returns the deduplication key for the destination.
func (g *DeliveryGroup) Fingerprint() string {
	return g.fingerprint
}

// FullAddress returns the destination address text as first written.
func (g *DeliveryGroup) FullAddress() string {
	return g.fullAddress
}

// City returns the destination city as first written.
func (g *DeliveryGroup) City() string {
	return g.city
}

// PostalCode returns the destination postal code as first written.
func (g *DeliveryGroup) PostalCode() string {
	return g.postalCode
}

func (g *DeliveryGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *DeliveryGroup) setAddress(fullAddress, city, postalCode string) error {
	if fullAddress == "" {
		return errs.NewValueIsRequiredError("fullAddress")
	}

	g.fullAddress = fullAddress
	g.city = city
	g.postalCode = postalCode
	return nil
}

func (g *DeliveryGroup) setFingerprint(fingerprint string) error {
	if fingerprint == "" {
		return errs.NewValueIsRequiredError("fingerprint")
	}

	g.fingerprint = fingerprint
	return nil
}
