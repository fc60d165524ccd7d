package kernel

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil validation error is supplied, so an unconstructed object always fails
// with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes aggregates built through their constructor
// from zero-value structs. Every aggregate in the domain model embeds one;
// repositories and handlers call Validate before persisting, so a struct
// literal that skipped New*/Restore* never reaches the database.
//
// The guard holds a single flag that only the constructor sets. A zero-value
// struct therefore fails Validate.
//
// Example:
//
//	type Box struct {
//	    id           UUID
//	    dispatchDate time.Time
//	    guard        ConstructorGuard
//	}
//
//	func NewBox(id UUID, dispatchDate time.Time) (*Box, error) {
//	    // field validation ...
//	    return &Box{
//	        id:           id,
//	        dispatchDate: dispatchDate,
//	        guard:        NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (b *Box) Validate() error {
//	    return b.guard.Validate(ErrBoxIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as properly constructed.
// Call it from the object's constructor and nowhere else.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object came through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
