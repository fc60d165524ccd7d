// Package returnrepo provides data transfer objects and mapping functions
// for return records. Returns are append-only.
package returnrepo

import (
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/returns"

	"github.com/google/uuid"
)

// ReturnDTO represents the database structure for persisting return records.
type ReturnDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Reason     string
	ReturnedBy string
}

// TableName specifies the database table name for return records.
func (ReturnDTO) TableName() string {
	return "returns"
}

// fromDomain converts a return record to its database representation.
func fromDomain(rec *returns.Return) ReturnDTO {
	return ReturnDTO{
		ID:         rec.ID().Bytes(),
		OrderID:    rec.Order().Bytes(),
		Reason:     rec.Reason(),
		ReturnedBy: rec.ReturnedBy(),
	}
}

// toDomain converts a database DTO to a return record.
func toDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return returns.RestoreReturn(id, orderID, dto.Reason, dto.ReturnedBy)
}
