package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves the driver's notifications, newest first.
type ListNotificationsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a query for the driver's notifications.
func NewListNotificationsQuery(driverID kernel.UUID) (ListNotificationsQuery, error) {
	query := ListNotificationsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return ListNotificationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q ListNotificationsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *ListNotificationsQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// NotificationResponse is the read model of one notification.
type NotificationResponse struct {
	ID        kernel.UUID
	Kind      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// ListNotificationsResponse lists the driver's notifications newest first
// together with the unread count.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse
	UnreadCount   int
}
