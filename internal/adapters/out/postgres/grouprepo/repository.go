package grouprepo

import (
	"context"
	"errors"

	"lensdispatch/internal/adapters/out/postgres/pgerr"
	"lensdispatch/internal/core/domain/model/deliverygroup"
	"lensdispatch/internal/core/domain/model/kernel"
	"lensdispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryGroupRepository implements DeliveryGroupRepository using GORM.
type GormDeliveryGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryGroupRepository creates a new GORM delivery group repository.
func NewGormDeliveryGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryGroupRepository {
	return &GormDeliveryGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery group to the database.
// The insert carries ON CONFLICT DO NOTHING on the fingerprint index, so a
// lost creation race comes back as ConflictError without ever aborting a
// surrounding transaction. Callers re-read the winning group afterwards.
func (r *GormDeliveryGroupRepository) Add(ctx context.Context, aggregate *deliverygroup.DeliveryGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fingerprint"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause("delivery_group", aggregate.Fingerprint(), result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("delivery_group", aggregate.Fingerprint())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery group by ID.
func (r *GormDeliveryGroupRepository) Get(ctx context.Context, id kernel.UUID) (*deliverygroup.DeliveryGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery_group", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByFingerprint retrieves the delivery group for a normalized address fingerprint.
func (r *GormDeliveryGroupRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*deliverygroup.DeliveryGroup, error) {
	var dto DeliveryGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "fingerprint = ?", fingerprint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery_group", fingerprint)
		}
		return nil, err
	}

	return toDomain(dto)
}
