// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// BoxID is indexed so the packing ledger can project a box's completion from
// its member orders.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerRef string
	StoreCode   string     `gorm:"index"`
	BoxID       *uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	OrderDate   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional box assignment.
func fromDomain(o *order.Order) OrderDTO {
	var boxID *uuid.UUID
	if id := o.Box(); id != nil {
		raw := id.Bytes()
		boxID = &raw
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		CustomerRef: o.CustomerRef(),
		StoreCode:   o.StoreCode(),
		BoxID:       boxID,
		Status:      int(o.Status()),
		OrderDate:   o.OrderDate(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and box assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var boxID *kernel.UUID
	if dto.BoxID != nil {
		bID, boxErr := kernel.UUIDFromBytes((*dto.BoxID)[:])
		if boxErr != nil {
			return nil, boxErr
		}

		boxID = &bID
	}

	return order.RestoreOrder(id, dto.CustomerRef, dto.StoreCode, boxID, order.Status(dto.Status), dto.OrderDate)
}
