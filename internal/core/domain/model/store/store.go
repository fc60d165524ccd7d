package store

import (
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through NewStore or RestoreStore.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore constructor")

// Store represents a destination store in the dispatch network. Stores are
// keyed by their store code and always resolve to exactly one delivery
// group via the normalized address fingerprint.
//
// Store follows these invariants:
//   - Must have a non-empty code, name and address
//   - deliveryGroupID is derived from the address, never set independently:
//     any write touching address or postal code goes through RelocateTo with
//     a freshly resolved group id
//   - The courier assignment is optional reference data
type Store struct {
	// code is the store's primary key in the directory
	code string

	// name is the store's display name
	name string

	// address is the street address of the store
	address string

	// city, state and postalCode complete the destination
	city       string
	state      string
	postalCode string

	// contact is a free-form phone/e-mail contact line
	contact string

	// courierID is the preferred courier, nil if none
	courierID *kernel.UUID

	// deliveryGroupID is the resolved physical destination group
	deliveryGroupID kernel.UUID

	// guard ensures the store was created via a constructor
	guard kernel.ConstructorGuard
}

// NewStore creates a store record. The delivery group id must be the result
// of resolving the store's address through the delivery-group registry; the
// directory performs that resolution before constructing the store.
func NewStore(
	code, name, address, city, state, postalCode, contact string,
	courierID *kernel.UUID,
	deliveryGroupID kernel.UUID,
) (*Store, error) {
	s := &Store{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCode(code),
		s.setName(name),
		s.setAddress(address, city, state, postalCode),
		s.setContact(contact),
		s.setCourier(courierID),
		s.setDeliveryGroup(deliveryGroupID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a store from persistent storage.
func RestoreStore(
	code, name, address, city, state, postalCode, contact string,
	courierID *kernel.UUID,
	deliveryGroupID kernel.UUID,
) (*Store, error) {
	return NewStore(code, name, address, city, state, postalCode, contact, courierID, deliveryGroupID)
}

// Validate ensures the store was properly constructed.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// IsEqual compares two stores by store code.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.code == other.code
}

// Code returns the store's primary key.
func (s *Store) Code() string {
	return s.code
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// Address returns the store's street address.
func (s *Store) Address() string {
	return s.address
}

// City returns the store's city.
func (s *Store) City() string {
	return s.city
}

// State returns the store's state.
func (s *Store) State() string {
	return s.state
}

// PostalCode returns the store's postal code.
func (s *Store) PostalCode() string {
	return s.postalCode
}

// Contact returns the store's contact line.
func (s *Store) Contact() string {
	return s.contact
}

// Courier returns the preferred courier's ID, nil if none is assigned.
func (s *Store) Courier() *kernel.UUID {
	return s.courierID
}

// DeliveryGroup returns the resolved delivery group id for the store's
// current address. Read-only to callers; it changes only through RelocateTo.
func (s *Store) DeliveryGroup() kernel.UUID {
	return s.deliveryGroupID
}

// NormalizedAddress returns the canonical form of the store's destination,
// which the directory uses to resolve the delivery group.
func (s *Store) NormalizedAddress() kernel.NormalizedAddress {
	return kernel.NewNormalizedAddress(s.address, s.postalCode)
}

// RelocateTo rewrites the store's address fields together with the delivery
// group that was re-resolved for them. Address and group move as one unit so
// the derived field can never drift out of sync with the address text.
func (s *Store) RelocateTo(address, city, state, postalCode string, deliveryGroupID kernel.UUID) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if err := deliveryGroupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryGroupID", err)
	}

	s.address = address
	s.city = city
	s.state = state
	s.postalCode = postalCode
	s.deliveryGroupID = deliveryGroupID
	return nil
}

// AssignCourier sets the store's preferred courier.
func (s *Store) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	s.courierID = &courierID
	return nil
}

func (s *Store) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	s.code = code
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setAddress(address, city, state, postalCode string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	s.address = address
	s.city = city
	s.state = state
	s.postalCode = postalCode
	return nil
}

func (s *Store) setContact(contact string) error {
	s.contact = contact
	return nil
}

func (s *Store) setCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	s.courierID = courierID
	return nil
}

func (s *Store) setDeliveryGroup(deliveryGroupID kernel.UUID) error {
	if err := deliveryGroupID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryGroupID", err)
	}

	s.deliveryGroupID = deliveryGroupID
	return nil
}
