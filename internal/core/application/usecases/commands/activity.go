package commands

import (
	"context"
	"log/slog"
	"time"

	"lensdispatch/internal/core/ports"
)

// recordActivity appends an audit event after a successful commit.
// The sink is optional and the append is best-effort: failures are logged
// and never propagated to the caller.
func recordActivity(ctx context.Context, sink ports.ActivityLog, entity, entityID, action, payload string) {
	if sink == nil {
		return
	}

	event := ports.ActivityEvent{
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}

	if err := sink.Record(ctx, event); err != nil {
		slog.Warn("activity log append failed",
			"entity", entity,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
	}
}
