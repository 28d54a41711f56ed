// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notifications.
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID `gorm:"type:uuid;index"`
	RecipientType string    `gorm:"type:varchar(10)"`
	Kind          string    `gorm:"type:varchar(10)"`
	Title         string
	Message       string
	Read          bool      `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
}

// recipientTypeDriver is the only recipient kind this service writes; the
// column exists for compatibility with the shared notifications table.
const recipientTypeDriver = "driver"

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            aggregate.ID().Bytes(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		RecipientType: recipientTypeDriver,
		Kind:          aggregate.Kind().String(),
		Title:         aggregate.Title(),
		Message:       aggregate.Message(),
		Read:          aggregate.IsRead(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	kind, err := notification.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, recipientID, kind,
		dto.Title, dto.Message, dto.Read, dto.CreatedAt)
}
