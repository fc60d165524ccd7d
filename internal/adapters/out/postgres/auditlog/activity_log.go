// Package auditlog provides the postgres-backed activity log sink.
// Events are appended outside the unit of work after a successful commit,
// so a failed append never rolls back the business operation.
package auditlog

import (
	"context"
	"time"

	"lensdispatch/internal/core/ports"

	"gorm.io/gorm"
)

// ActivityLogDTO represents an appended audit event row.
type ActivityLogDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Entity     string `gorm:"index:idx_activity_logs_entity,priority:1"`
	EntityID   string `gorm:"index:idx_activity_logs_entity,priority:2"`
	Action     string
	Payload    string `gorm:"type:text"`
	OccurredAt time.Time
}

// TableName specifies the database table name for audit events.
func (ActivityLogDTO) TableName() string {
	return "activity_logs"
}

// GormActivityLog implements the ActivityLog port using GORM.
type GormActivityLog struct {
	db *gorm.DB
}

// NewGormActivityLog creates a new postgres-backed activity log.
func NewGormActivityLog(db *gorm.DB) *GormActivityLog {
	return &GormActivityLog{db: db}
}

// Record appends an event to the activity log.
func (l *GormActivityLog) Record(ctx context.Context, event ports.ActivityEvent) error {
	dto := ActivityLogDTO{
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		Action:     event.Action,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
