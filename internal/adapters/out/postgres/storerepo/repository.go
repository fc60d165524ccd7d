package storerepo

import (
	"context"
	"errors"

	"lensdispatch/internal/adapters/out/postgres/pgerr"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/core/domain/model/store"
	"lensdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
// Stores are identified by code rather than a UUID, so they are not tracked
// through the unit of work's aggregate tracker.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// Add saves a new store to the database.
// A duplicate code surfaces as ConflictError.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("store", aggregate.Code(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing store to the database.
func (r *GormStoreRepository) Update(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StoreDTO{}).Where("code = ?", dto.Code).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a store by its business code.
func (r *GormStoreRepository) Get(ctx context.Context, code string) (*store.Store, error) {
	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a store by its business code.
func (r *GormStoreRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Delete(&StoreDTO{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("store", code)
	}

	return nil
}

// GetAllInGroup retrieves all stores assigned to the given delivery group.
func (r *GormStoreRepository) GetAllInGroup(ctx context.Context, groupID kernel.UUID) ([]*store.Store, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "delivery_group_id = ?", groupID.Bytes()).Error; err != nil {
		return nil, err
	}

	stores := make([]*store.Store, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, nil
}
