package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStoresInGroupQueryHandler reads the stores of a delivery group from the
// database. Results are sorted by store code for consistent output.
type GetStoresInGroupQueryHandler struct {
	db *gorm.DB
}

// NewGetStoresInGroupQueryHandler creates a handler for delivery group listings.
// Requires a GORM database connection for query execution.
func NewGetStoresInGroupQueryHandler(db *gorm.DB) GetStoresInGroupQueryHandler {
	return GetStoresInGroupQueryHandler{db: db}
}

// Handle executes the query and returns every store of the group.
func (h GetStoresInGroupQueryHandler) Handle(
	ctx context.Context,
	query GetStoresInGroupQuery,
) ([]GetStoresInGroupQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stores := make([]GetStoresInGroupQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			address,
			city,
			state,
			postal_code,
			contact
		FROM stores
		WHERE delivery_group_id = ?
		ORDER BY code
	`, query.DeliveryGroupID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var storeResp GetStoresInGroupQueryResponse

		err = rows.Scan(
			&storeResp.Code,
			&storeResp.Name,
			&storeResp.Address,
			&storeResp.City,
			&storeResp.State,
			&storeResp.PostalCode,
			&storeResp.Contact,
		)
		if err != nil {
			return nil, err
		}

		stores = append(stores, storeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}
