package queries

import (
	"context"
	"database/sql"
	"errors"

	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreQueryHandler reads one store record from the database.
type GetStoreQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreQueryHandler creates a handler for single-store lookups.
func NewGetStoreQueryHandler(db *gorm.DB) GetStoreQueryHandler {
	return GetStoreQueryHandler{db: db}
}

// Handle executes the query and returns the store, or ObjectNotFoundError
// when no store carries the code.
func (h GetStoreQueryHandler) Handle(
	ctx context.Context,
	query GetStoreQuery,
) (GetStoreQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreQueryResponse{}, err
	}

	var storeResp GetStoreQueryResponse
	var groupID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			address,
			city,
			state,
			postal_code,
			contact,
			delivery_group_id
		FROM stores
		WHERE code = ?
	`, query.Code()).Row()

	err := row.Scan(
		&storeResp.Code,
		&storeResp.Name,
		&storeResp.Address,
		&storeResp.City,
		&storeResp.State,
		&storeResp.PostalCode,
		&storeResp.Contact,
		&groupID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetStoreQueryResponse{}, errs.NewObjectNotFoundError("store", query.Code())
		}
		return GetStoreQueryResponse{}, err
	}

	deliveryGroupID, err := kernel.UUIDFromBytes(groupID[:])
	if err != nil {
		return GetStoreQueryResponse{}, err
	}
	storeResp.DeliveryGroupID = deliveryGroupID

	return storeResp, nil
}
