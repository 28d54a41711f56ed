// Package ports defines repository interfaces for the driver domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByAuthID retrieves the driver registered for an authentication
	// provider identity. Returns ObjectNotFoundError for unknown identities.
	GetByAuthID(ctx context.Context, authID string) (*driver.Driver, error)

	// GetAllActive retrieves every driver currently marked on duty.
	// Used by the end-of-day close to deactivate them.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)
}

// SessionRepository defines the persistence contract for work sessions.
type SessionRepository interface {
	// Add persists a new session.
	Add(ctx context.Context, aggregate *driver.Session) error

	// Update persists changes to an existing session.
	Update(ctx context.Context, aggregate *driver.Session) error

	// GetOpenByDriver retrieves the driver's open session (end time unset).
	// Returns ObjectNotFoundError when no session is open.
	GetOpenByDriver(ctx context.Context, driverID kernel.UUID) (*driver.Session, error)

	// GetAllByDriver retrieves the driver's sessions that overlap [from, to),
	// newest first.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID, from, to time.Time) ([]*driver.Session, error)

	// GetAllOpen retrieves every open session across drivers.
	// Used by the end-of-day close.
	GetAllOpen(ctx context.Context) ([]*driver.Session, error)
}
