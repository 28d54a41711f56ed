package ports

import (
	"context"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/notification"
	"driverhub/internal/core/domain/model/penalty"
)

// PenaltyRepository defines the persistence contract for penalties.
// Penalties are issued by back-office systems; the app reads them and
// records appeal submissions. They are never deleted.
type PenaltyRepository interface {
	// Add persists a new penalty.
	Add(ctx context.Context, aggregate *penalty.Penalty) error

	// Update persists changes to an existing penalty (appeal submission).
	Update(ctx context.Context, aggregate *penalty.Penalty) error

	// Get retrieves a penalty by its identifier, scoped to the driver.
	// Returns ObjectNotFoundError when the penalty does not exist or
	// belongs to another driver.
	Get(ctx context.Context, id, driverID kernel.UUID) (*penalty.Penalty, error)

	// GetAllByDriver retrieves all the driver's penalties, newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*penalty.Penalty, error)
}

// NotificationRepository defines the persistence contract for driver
// notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read flag).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its identifier, scoped to the driver.
	Get(ctx context.Context, id, driverID kernel.UUID) (*notification.Notification, error)

	// GetAllByDriver retrieves all the driver's notifications, newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*notification.Notification, error)

	// MarkAllRead flips the read flag on every unread notification of the
	// driver in one statement.
	MarkAllRead(ctx context.Context, driverID kernel.UUID) error
}
