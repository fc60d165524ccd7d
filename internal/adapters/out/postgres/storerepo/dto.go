// Package storerepo provides data transfer objects and mapping functions for
// store persistence. Stores are keyed by their business code, so the table
// uses the code as primary key instead of a surrogate id.
package storerepo

import (
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
// DeliveryGroupID is indexed for group membership queries.
type StoreDTO struct {
	Code            string `gorm:"primaryKey"`
	Name            string
	Address         string
	City            string
	State           string
	PostalCode      string
	Contact         string
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryGroupID uuid.UUID  `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store aggregate to its database representation.
func fromDomain(s *store.Store) StoreDTO {
	var courierID *uuid.UUID
	if id := s.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return StoreDTO{
		Code:            s.Code(),
		Name:            s.Name(),
		Address:         s.Address(),
		City:            s.City(),
		State:           s.State(),
		PostalCode:      s.PostalCode(),
		Contact:         s.Contact(),
		CourierID:       courierID,
		DeliveryGroupID: s.DeliveryGroup().Bytes(),
	}
}

// toDomain converts a database DTO to a store aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, err := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if err != nil {
			return nil, err
		}

		courierID = &cID
	}

	groupID, err := kernel.UUIDFromBytes(dto.DeliveryGroupID[:])
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(
		dto.Code, dto.Name, dto.Address, dto.City, dto.State, dto.PostalCode, dto.Contact,
		courierID, groupID,
	)
}
