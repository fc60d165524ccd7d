package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the typed errors below.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrVersionIsInvalid   = errors.New("version is invalid")
	ErrConflict           = errors.New("conflict")
	ErrIllegalTransition  = errors.New("illegal transition")
	ErrIntegrityViolation = errors.New("integrity violation")
)

// sanitize collapses line breaks so error messages stay single-line
// when user-provided values are interpolated into them.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) ObjectNotFoundError {
	return ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)", e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %s", e.ID))
}

func (e ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) ValueIsOutOfRangeError {
	return ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v", e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName}
}

func (e VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("version is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("version is invalid: %s", e.ParamName))
}

func (e VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ConflictError indicates that a uniqueness guarantee was violated:
// duplicate docket numbers, duplicate courier names, or a delivery-group
// creation race that exhausted its retries.
type ConflictError struct {
	Resource string
	Key      string
	Cause    error
}

// NewConflictError creates a ConflictError without an underlying cause.
func NewConflictError(resource, key string) ConflictError {
	return ConflictError{Resource: resource, Key: key}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause,
// typically the storage-level unique-constraint violation.
func NewConflictErrorWithCause(resource, key string, cause error) ConflictError {
	return ConflictError{Resource: resource, Key: key, Cause: cause}
}

func (e ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("conflict: %s %s already exists (cause: %s)", e.Resource, e.Key, e.Cause))
	}
	return sanitize(fmt.Sprintf("conflict: %s %s already exists", e.Resource, e.Key))
}

func (e ConflictError) Unwrap() error {
	return ErrConflict
}

// IllegalTransitionError indicates a status change that the lifecycle
// state machine forbids. It carries the entity, its identifier, the
// current status and the attempted status so the caller can act on it.
type IllegalTransitionError struct {
	Entity    string
	ID        string
	Current   string
	Attempted string
}

// NewIllegalTransitionError creates an IllegalTransitionError describing
// the rejected status change.
func NewIllegalTransitionError(entity, id, current, attempted string) IllegalTransitionError {
	return IllegalTransitionError{Entity: entity, ID: id, Current: current, Attempted: attempted}
}

func (e IllegalTransitionError) Error() string {
	return sanitize(fmt.Sprintf(
		"illegal transition: %s %s cannot go from %s to %s", e.Entity, e.ID, e.Current, e.Attempted))
}

func (e IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// IntegrityError indicates a referential or cross-aggregate consistency
// violation, such as packing an order into a box of a different delivery group.
type IntegrityError struct {
	ParamName string
	Cause     error
}

// NewIntegrityError creates an IntegrityError without an underlying cause.
func NewIntegrityError(paramName string) IntegrityError {
	return IntegrityError{ParamName: paramName}
}

// NewIntegrityErrorWithCause creates an IntegrityError wrapping an underlying cause.
func NewIntegrityErrorWithCause(paramName string, cause error) IntegrityError {
	return IntegrityError{ParamName: paramName, Cause: cause}
}

func (e IntegrityError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("integrity violation: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("integrity violation: %s", e.ParamName))
}

func (e IntegrityError) Unwrap() error {
	return ErrIntegrityViolation
}
