// Package errs holds the typed errors shared by the domain model, the
// application layer and the adapters. Callers classify failures with
// errors.As rather than string matching; the HTTP layer maps each type to a
// status code the same way.
//
// The families, roughly in order of how often they fire:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     constructor and command validation
//   - ObjectNotFoundError: a lookup by id or business code found nothing
//   - ConflictError: a uniqueness rule lost (docket number, courier name,
//     delivery-group fingerprint) or a resource is still referenced
//   - IllegalTransitionError: a lifecycle move the state machine forbids,
//     carrying the entity, its id, the current and the attempted status
//   - IntegrityError: cross-aggregate consistency broken, e.g. an order
//     whose store group does not match its box group
//
// Every type comes as a struct with a New* constructor, a New*WithCause
// variant and an Unwrap method so wrapped causes stay reachable.
package errs
