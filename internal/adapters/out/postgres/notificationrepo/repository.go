package notificationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/notification"
	"driverhub/internal/pkg/errs"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("add notification", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing notification to the database.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamFailureError("update notification", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a notification by ID, scoped to the driver.
func (r *GormNotificationRepository) Get(ctx context.Context, id, driverID kernel.UUID) (*notification.Notification, error) {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND recipient_id = ?", id.Bytes(), driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, errs.NewUpstreamFailureError("get notification", err)
	}

	return toDomain(dto)
}

// GetAllByDriver retrieves all the driver's notifications, newest first.
func (r *GormNotificationRepository) GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*notification.Notification, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", driverID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamFailureError("get notifications by driver", err)
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkAllRead flips the read flag on every unread notification of the driver
// in one statement.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("recipient_id = ? AND read = ?", driverID.Bytes(), false).
		Update("read", true).Error
	if err != nil {
		return errs.NewUpstreamFailureError("mark notifications read", err)
	}
	return nil
}
