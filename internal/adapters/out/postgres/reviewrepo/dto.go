// Package reviewrepo declares the database structure of the driver_reviews
// table. Reviews are written by the customer platform; this service only
// reads them, so the package carries no repository.
package reviewrepo

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure of a customer review.
type ReviewDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID  `gorm:"type:uuid;index"`
	OrderID      *uuid.UUID `gorm:"type:uuid"`
	Rating       int
	Comment      string
	ReviewerName string
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "driver_reviews"
}
