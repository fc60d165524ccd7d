// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. A shipment row owns its attached boxes and
// delivery confirmations as child rows, loaded and saved together with the
// aggregate.
package shipmentrepo

import (
	"time"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The docket number carries a unique index.
type ShipmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocketNumber  string    `gorm:"uniqueIndex"`
	CourierID     uuid.UUID `gorm:"type:uuid;index"`
	ShipmentDate  time.Time
	Status        int
	Boxes         []ShipmentBoxDTO  `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Confirmations []ConfirmationDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentBoxDTO represents a box attached to a shipment's manifest.
type ShipmentBoxDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoxID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for manifest entries.
func (ShipmentBoxDTO) TableName() string {
	return "shipment_boxes"
}

// ConfirmationDTO represents a delivery confirmation recorded against a shipment.
type ConfirmationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	ConfirmedBy string
	Status      int
	Notes       string
}

// TableName specifies the database table name for confirmation entities.
func (ConfirmationDTO) TableName() string {
	return "shipment_confirmations"
}

// fromDomain converts a shipment aggregate to its database representation,
// including manifest entries and confirmations.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	boxes := make([]ShipmentBoxDTO, 0, len(s.Boxes()))
	for _, boxID := range s.Boxes() {
		boxes = append(boxes, ShipmentBoxDTO{
			ShipmentID: s.ID().Bytes(),
			BoxID:      boxID.Bytes(),
		})
	}

	confirmations := make([]ConfirmationDTO, 0, len(s.Confirmations()))
	for _, c := range s.Confirmations() {
		confirmations = append(confirmations, ConfirmationDTO{
			ID:          c.ID().Bytes(),
			ShipmentID:  s.ID().Bytes(),
			ConfirmedBy: c.ConfirmedBy(),
			Status:      int(c.Status()),
			Notes:       c.Notes(),
		})
	}

	return ShipmentDTO{
		ID:            s.ID().Bytes(),
		DocketNumber:  s.DocketNumber(),
		CourierID:     s.Courier().Bytes(),
		ShipmentDate:  s.ShipmentDate(),
		Status:        int(s.Status()),
		Boxes:         boxes,
		Confirmations: confirmations,
	}
}

// toDomain converts a database DTO to a shipment aggregate.
// Reconstructs the complete aggregate with manifest and confirmations using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	boxIDs := make([]kernel.UUID, 0, len(dto.Boxes))
	for _, b := range dto.Boxes {
		boxID, boxErr := kernel.UUIDFromBytes(b.BoxID[:])
		if boxErr != nil {
			return nil, boxErr
		}
		boxIDs = append(boxIDs, boxID)
	}

	confirmations := make([]*shipment.Confirmation, 0, len(dto.Confirmations))
	for _, c := range dto.Confirmations {
		cID, cErr := kernel.UUIDFromBytes(c.ID[:])
		if cErr != nil {
			return nil, cErr
		}

		confirmation, cErr := shipment.RestoreConfirmation(cID, c.ConfirmedBy, shipment.ConfirmationStatus(c.Status), c.Notes)
		if cErr != nil {
			return nil, cErr
		}
		confirmations = append(confirmations, confirmation)
	}

	return shipment.RestoreShipment(
		id, dto.DocketNumber, courierID, dto.ShipmentDate,
		shipment.Status(dto.Status), boxIDs, confirmations,
	)
}
