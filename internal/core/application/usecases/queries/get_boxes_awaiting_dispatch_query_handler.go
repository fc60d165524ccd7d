package queries

import (
	"context"

	"lensdispatch/internal/core/domain/model/box"
	"lensdispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBoxesAwaitingDispatchQueryHandler retrieves packed boxes that no open
// shipment has claimed. A box attached to a delivered shipment is excluded
// as well; it already left the building once.
type GetBoxesAwaitingDispatchQueryHandler struct {
	db *gorm.DB
}

// NewGetBoxesAwaitingDispatchQueryHandler creates a handler for dispatch-ready
// box queries. Requires a GORM database connection for query execution.
func NewGetBoxesAwaitingDispatchQueryHandler(db *gorm.DB) GetBoxesAwaitingDispatchQueryHandler {
	return GetBoxesAwaitingDispatchQueryHandler{db: db}
}

// Handle executes the query to retrieve all dispatch-ready boxes.
// Results are sorted by dispatch date, oldest first, so the most overdue
// boxes surface at the top.
func (h GetBoxesAwaitingDispatchQueryHandler) Handle(
	ctx context.Context,
	query GetBoxesAwaitingDispatchQuery,
) ([]GetBoxesAwaitingDispatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	boxes := make([]GetBoxesAwaitingDispatchQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.dispatch_date,
			b.delivery_group_id
		FROM boxes b
		WHERE b.status = ?
		AND NOT EXISTS (
			SELECT 1
			FROM shipment_boxes sb
			WHERE sb.box_id = b.id
		)
		ORDER BY b.dispatch_date, b.id
	`, box.Packed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var boxResp GetBoxesAwaitingDispatchQueryResponse
		var id uuid.UUID
		var groupID uuid.UUID

		err = rows.Scan(
			&id,
			&boxResp.DispatchDate,
			&groupID,
		)
		if err != nil {
			return nil, err
		}

		boxID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		boxResp.ID = boxID

		deliveryGroupID, idErr := kernel.UUIDFromBytes(groupID[:])
		if idErr != nil {
			return nil, idErr
		}
		boxResp.DeliveryGroupID = deliveryGroupID

		boxes = append(boxes, boxResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return boxes, nil
}
