package queries

import (
	"context"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenShipmentsQueryHandler retrieves undelivered shipments from the
// database. A shipment stays in the result until a Received confirmation
// closes it; issue-reported shipments therefore remain visible.
type GetOpenShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenShipmentsQueryHandler creates a handler for open shipment queries.
// Requires a GORM database connection for query execution.
func NewGetOpenShipmentsQueryHandler(db *gorm.DB) GetOpenShipmentsQueryHandler {
	return GetOpenShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered shipments.
// Results are sorted by docket number for consistent output.
func (h GetOpenShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenShipmentsQuery,
) ([]GetOpenShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetOpenShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.docket_number,
			c.name,
			s.shipment_date,
			s.status,
			COUNT(sb.box_id)
		FROM shipments s
		JOIN couriers c ON c.id = s.courier_id
		LEFT JOIN shipment_boxes sb ON sb.shipment_id = s.id
		WHERE s.status != ?
		GROUP BY s.id, s.docket_number, c.name, s.shipment_date, s.status
		ORDER BY s.docket_number
	`, shipment.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipmentResp GetOpenShipmentsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&shipmentResp.DocketNumber,
			&shipmentResp.CourierName,
			&shipmentResp.ShipmentDate,
			&status,
			&shipmentResp.BoxCount,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shipmentResp.ID = shipmentID
		shipmentResp.Status = shipment.Status(status)

		shipments = append(shipments, shipmentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
