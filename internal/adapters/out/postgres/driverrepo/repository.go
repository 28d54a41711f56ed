package driverrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("add driver", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database. Select("*") forces all
// columns so that a photo cleared to empty or a deactivation is written.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamFailureError("update driver", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, errs.NewUpstreamFailureError("get driver", err)
	}

	return driverToDomain(dto)
}

// GetByAuthID retrieves the driver registered for an auth identity.
func (r *GormDriverRepository) GetByAuthID(ctx context.Context, authID string) (*driver.Driver, error) {
	if authID == "" {
		return nil, errs.NewValueIsRequiredError("authID")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "auth_id = ?", authID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", authID)
		}
		return nil, errs.NewUpstreamFailureError("get driver by auth id", err)
	}

	return driverToDomain(dto)
}

// GetAllActive retrieves every driver currently marked on duty.
func (r *GormDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active = ?", true).Error; err != nil {
		return nil, errs.NewUpstreamFailureError("get active drivers", err)
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := driverToDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *driver.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("add session", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing session to the database.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *driver.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := sessionFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamFailureError("update session", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetOpenByDriver retrieves the driver's open session.
func (r *GormSessionRepository) GetOpenByDriver(ctx context.Context, driverID kernel.UUID) (*driver.Session, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "driver_id = ? AND end_time IS NULL", driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open session", driverID.String())
		}
		return nil, errs.NewUpstreamFailureError("get open session", err)
	}

	return sessionToDomain(dto)
}

// GetAllByDriver retrieves the driver's sessions overlapping [from, to),
// newest first. Open sessions overlap any range that extends past their start.
func (r *GormSessionRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID, from, to time.Time) ([]*driver.Session, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SessionDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND start_time < ? AND (end_time IS NULL OR end_time >= ?)",
			driverID.Bytes(), to, from).
		Order("start_time DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamFailureError("get sessions by driver", err)
	}

	return sessionsToDomain(dtos)
}

// GetAllOpen retrieves every open session across drivers.
func (r *GormSessionRepository) GetAllOpen(ctx context.Context) ([]*driver.Session, error) {
	var dtos []SessionDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "end_time IS NULL").Error; err != nil {
		return nil, errs.NewUpstreamFailureError("get open sessions", err)
	}

	return sessionsToDomain(dtos)
}

func sessionsToDomain(dtos []SessionDTO) ([]*driver.Session, error) {
	sessions := make([]*driver.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := sessionToDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
