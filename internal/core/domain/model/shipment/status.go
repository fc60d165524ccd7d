package shipment

import "fmt"

// Status represents the lifecycle state of a courier shipment.
//
// State transitions:
//
//	Created ──> Dispatched ──> In Transit ──> Delivered
//	                │               │             ^
//	                │               v             │
//	                └────────> Issue Reported ────┘
//	                                │  ^
//	                                └──┘ (repeated issues)
//
// Issue Reported is non-terminal: a later Received confirmation resolves it
// to Delivered, and the shipment can also be put back In Transit once the
// issue is cleared. Delivered is final. A Received confirmation while the
// shipment is merely Dispatched also delivers it directly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a shipment being manifested.
	// Boxes may only be attached while the shipment is Created.
	Created

	// Dispatched indicates the shipment has been handed to the courier.
	Dispatched

	// InTransit indicates the courier has confirmed carriage.
	InTransit

	// Delivered indicates the destination confirmed receipt.
	// This is a final state with no further transitions allowed.
	Delivered

	// IssueReported indicates the latest delivery confirmation reported a
	// problem. Reversible by a later Received confirmation.
	IssueReported
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Created:       "Created",
		Dispatched:    "Dispatched",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
		IssueReported: "Issue Reported",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:       "Created",
		Dispatched:    "Dispatched",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
		IssueReported: "Issue Reported",
	}
}

// transitions is the closed transition table for shipment statuses.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Created:       {Dispatched},
		Dispatched:    {InTransit, Delivered, IssueReported},
		InTransit:     {Delivered, IssueReported},
		IssueReported: {InTransit, Delivered, IssueReported},
		Delivered:     {},
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

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0 && s.Validate() == nil
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, Dispatched, In Transit, Delivered, Issue Reported.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid shipment status", s)
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
