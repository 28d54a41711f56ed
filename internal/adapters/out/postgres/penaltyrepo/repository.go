package penaltyrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/penalty"
	"driverhub/internal/pkg/errs"
)

// GormPenaltyRepository implements PenaltyRepository using GORM.
type GormPenaltyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPenaltyRepository creates a new GORM penalty repository.
func NewGormPenaltyRepository(db *gorm.DB, tracker aggregateTracker) *GormPenaltyRepository {
	return &GormPenaltyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new penalty to the database.
func (r *GormPenaltyRepository) Add(ctx context.Context, aggregate *penalty.Penalty) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("add penalty", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing penalty to the database.
func (r *GormPenaltyRepository) Update(ctx context.Context, aggregate *penalty.Penalty) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PenaltyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamFailureError("update penalty", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a penalty by ID, scoped to the driver.
func (r *GormPenaltyRepository) Get(ctx context.Context, id, driverID kernel.UUID) (*penalty.Penalty, error) {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return nil, err
	}

	var dto PenaltyDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND driver_id = ?", id.Bytes(), driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("penalty", id.String())
		}
		return nil, errs.NewUpstreamFailureError("get penalty", err)
	}

	return toDomain(dto)
}

// GetAllByDriver retrieves all the driver's penalties, newest first.
func (r *GormPenaltyRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*penalty.Penalty, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PenaltyDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamFailureError("get penalties by driver", err)
	}

	penalties := make([]*penalty.Penalty, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		penalties = append(penalties, p)
	}

	return penalties, nil
}
