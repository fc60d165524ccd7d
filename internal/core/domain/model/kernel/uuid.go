package kernel

import (
	"fmt"

	"lensdispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// bypassed the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies aggregates across the dispatch domain: boxes, orders,
// shipments, couriers and delivery groups all carry one. It wraps
// github.com/google/uuid in an immutable value object so identifiers cannot
// be mutated after construction.
//
// The zero value is invalid; construct through NewUUID, UUIDFromString or
// UUIDFromBytes.
//
// Example:
//
//	boxID := kernel.NewUUID()
//
//	shipmentID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version-4 UUID. This is how every new aggregate
// gets its identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its text form. Standard, braced and
// urn:uuid formats are accepted. Used when ids arrive from HTTP path
// parameters or request bodies.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, rejecting the nil UUID.
// Query handlers use it to lift ids scanned from raw SQL rows back into the
// domain type.
//
// Example:
//
//	var id uuid.UUID
//	// ... rows.Scan(&id) ...
//	shipmentID, err := kernel.UUIDFromBytes(id[:])
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" text
// form. The zero value renders as the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID. The persistence layer passes this
// to GORM directly; it implements driver.Valuer, so it binds as a uuid
// column parameter. For a raw byte slice, slice the result: u.Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
// Aggregate and command constructors call this on every id they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
