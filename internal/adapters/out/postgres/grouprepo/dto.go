// Package grouprepo provides data transfer objects and mapping functions for
// delivery group persistence. This package implements the repository pattern
// for the delivery group aggregate, handling the conversion between domain
// entities and database representations.
package grouprepo

import (
	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryGroupDTO represents the database structure for persisting delivery
// group aggregates. The fingerprint column carries a unique index; the
// repository inserts with ON CONFLICT DO NOTHING against it so concurrent
// creations surface as conflicts instead of aborted transactions.
type DeliveryGroupDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fingerprint string    `gorm:"type:char(64);uniqueIndex"`
	FullAddress string
	City        string
	PostalCode  string
}

// TableName specifies the database table name for delivery group entities.
func (DeliveryGroupDTO) TableName() string {
	return "delivery_groups"
}

// fromDomain converts a delivery group aggregate to its database representation.
func fromDomain(group *deliverygroup.DeliveryGroup) DeliveryGroupDTO {
	return DeliveryGroupDTO{
		ID:          group.ID().Bytes(),
		Fingerprint: group.Fingerprint(),
		FullAddress: group.FullAddress(),
		City:        group.City(),
		PostalCode:  group.PostalCode(),
	}
}

// toDomain converts a database DTO to a delivery group aggregate.
// The persisted fingerprint is trusted as-is via RestoreDeliveryGroup.
func toDomain(dto DeliveryGroupDTO) (*deliverygroup.DeliveryGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return deliverygroup.RestoreDeliveryGroup(id, dto.Fingerprint, dto.FullAddress, dto.City, dto.PostalCode)
}
