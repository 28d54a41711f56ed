package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
)

// ListNotificationsQueryHandler lists a driver's notifications.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for the notifications
// query.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListNotificationsQueryHandler) Handle(ctx context.Context, query ListNotificationsQuery) (ListNotificationsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListNotificationsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, kind, title, message, read, created_at
		FROM notifications
		WHERE recipient_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return ListNotificationsResponse{}, err
	}
	defer rows.Close()

	response := ListNotificationsResponse{
		Notifications: make([]NotificationResponse, 0),
	}

	for rows.Next() {
		var (
			id        uuid.UUID
			kind      string
			title     string
			message   string
			read      bool
			createdAt time.Time
		)

		if err = rows.Scan(&id, &kind, &title, &message, &read, &createdAt); err != nil {
			return ListNotificationsResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListNotificationsResponse{}, idErr
		}

		if !read {
			response.UnreadCount++
		}

		response.Notifications = append(response.Notifications, NotificationResponse{
			ID:        notificationID,
			Kind:      kind,
			Title:     title,
			Message:   message,
			Read:      read,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return ListNotificationsResponse{}, err
	}

	return response, nil
}
