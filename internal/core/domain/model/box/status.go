package box

import "fmt"

// Status represents the lifecycle state of a box. It implements a
// forward-only state machine: no transition skips a state and no
// transition moves backwards.
//
// State transitions:
//
//	Pending ──> Packing ──> Packed
//
// A box is Pending while no order has been assigned to it, Packing once
// packing has started but not every order is packed, and Packed when every
// non-returned order assigned to it has been packed. Packed is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created box,
	// before any order has been assigned to it.
	Pending

	// Packing indicates at least one order has been assigned and
	// packing is in progress.
	Packing

	// Packed indicates every non-returned order in the box is packed.
	// This is a final state; packed boxes accept no further orders.
	Packed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Packing: "Packing",
		Packed:  "Packed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "Pending",
		Packing: "Packing",
		Packed:  "Packed",
	}
}

// transitions is the closed transition table for box statuses.
// Absence means the transition is illegal.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending: {Packing},
		Packing: {Packed},
		Packed:  {},
	}
}

// IsLegalTransition reports whether the state machine permits moving
// from one status to another.
func IsLegalTransition(from, to Status) bool {
	for _, next := range transitions()[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Packing, Packed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid box status", s)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
