package order

import "fmt"

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct packing workflow.
//
// State transitions:
//
//	Pending ──> Packed
//	   │          │
//	   └──────────┴──> Returned
//
// Returned is terminal: a returned order leaves the packing completeness
// accounting of its box and never re-enters it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be packed into a box.
	Pending

	// Packed indicates the order has been packed into its box.
	Packed

	// Returned indicates the order was returned by the customer.
	// This is a final state with no further transitions allowed.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Packed:   "Packed",
		Returned: "Returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Packed:   "Packed",
		Returned: "Returned",
	}
}

// transitions is the closed transition table for order statuses.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:  {Packed, Returned},
		Packed:   {Returned},
		Returned: {},
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
// Valid statuses are: Pending, Packed, Returned.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid order status", s)
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
