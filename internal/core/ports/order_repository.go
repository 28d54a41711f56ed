package ports

import (
	"context"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads are scoped to a driver: an order that exists but belongs to a
// different driver is reported as not found.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, scoped to the driver.
	// Returns ObjectNotFoundError when the order does not exist or belongs
	// to another driver.
	Get(ctx context.Context, id, driverID kernel.UUID) (*order.Order, error)

	// UpdateStatus persists an order's state transition with a conditional
	// update keyed on the previous status. When the order row exists but its
	// status no longer matches previousStatus, the update affects zero rows
	// and ConcurrentModificationError is returned; the caller refetches.
	// Alongside the status it persists completion time, remark and photo
	// proof, the only fields a transition may change.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previousStatus order.Status) error

	// GetAllByRange retrieves the driver's orders created within [from, to),
	// newest first.
	GetAllByRange(ctx context.Context, driverID kernel.UUID, from, to time.Time) ([]*order.Order, error)

	// GetRecent retrieves the driver's newest orders, up to the given limit.
	GetRecent(ctx context.Context, driverID kernel.UUID, limit int) ([]*order.Order, error)
}
