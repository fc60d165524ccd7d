// Package boxrepo provides data transfer objects and mapping functions for
// box persistence.
package boxrepo

import (
	"time"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BoxDTO represents the database structure for persisting box aggregates.
// Status and dispatch date are indexed together for the stale-packing scan.
type BoxDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DispatchDate    time.Time `gorm:"index:idx_boxes_status_dispatch,priority:2"`
	DeliveryGroupID uuid.UUID `gorm:"type:uuid;index"`
	Status          int       `gorm:"index:idx_boxes_status_dispatch,priority:1"`
}

// TableName specifies the database table name for box entities.
func (BoxDTO) TableName() string {
	return "boxes"
}

// fromDomain converts a box aggregate to its database representation.
func fromDomain(b *box.Box) BoxDTO {
	return BoxDTO{
		ID:              b.ID().Bytes(),
		DispatchDate:    b.DispatchDate(),
		DeliveryGroupID: b.DeliveryGroup().Bytes(),
		Status:          int(b.Status()),
	}
}

// toDomain converts a database DTO to a box aggregate.
func toDomain(dto BoxDTO) (*box.Box, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.DeliveryGroupID[:])
	if err != nil {
		return nil, err
	}

	return box.RestoreBox(id, dto.DispatchDate, groupID, box.Status(dto.Status))
}
