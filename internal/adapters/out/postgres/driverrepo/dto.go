// Package driverrepo provides data transfer objects and mapping functions for
// driver and work session persistence.
package driverrepo

import (
	"time"

	"github.com/google/uuid"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The auth identity is unique: one external account maps to one driver.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthID        string    `gorm:"uniqueIndex"`
	FullName      string
	Phone         string
	VehicleNumber string
	VehicleType   string
	Photo         string
	IsActive      bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// SessionDTO represents the database structure for persisting work sessions.
// An open session has a NULL end time.
type SessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID  uuid.UUID `gorm:"type:uuid;index"`
	StartTime time.Time `gorm:"index"`
	EndTime   *time.Time
}

// TableName specifies the database table name for session entities.
func (SessionDTO) TableName() string {
	return "driver_sessions"
}

func driverFromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		AuthID:        aggregate.AuthID(),
		FullName:      aggregate.FullName(),
		Phone:         aggregate.Phone(),
		VehicleNumber: aggregate.VehicleNumber(),
		VehicleType:   aggregate.VehicleType(),
		Photo:         aggregate.Photo(),
		IsActive:      aggregate.IsActive(),
	}
}

func driverToDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.AuthID, dto.FullName, dto.Phone,
		dto.VehicleNumber, dto.VehicleType, dto.Photo, dto.IsActive)
}

func sessionFromDomain(aggregate *driver.Session) SessionDTO {
	return SessionDTO{
		ID:        aggregate.ID().Bytes(),
		DriverID:  aggregate.DriverID().Bytes(),
		StartTime: aggregate.StartTime(),
		EndTime:   aggregate.EndTime(),
	}
}

func sessionToDomain(dto SessionDTO) (*driver.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreSession(id, driverID, dto.StartTime, dto.EndTime)
}
