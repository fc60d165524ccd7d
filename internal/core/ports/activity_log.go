package ports

import (
	"context"
	"time"
)

// ActivityEvent describes a single recorded state change.
// Payload is a free-form JSON document with event-specific detail.
type ActivityEvent struct {
	Entity     string
	EntityID   string
	Action     string
	Payload    string
	OccurredAt time.Time
}

// ActivityLog is an append-only audit sink. Events are recorded after a
// successful commit, best-effort: a failed append must not fail the
// business operation that produced it.
type ActivityLog interface {
	// Record appends an event to the log.
	Record(ctx context.Context, event ActivityEvent) error
}
