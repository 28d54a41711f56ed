package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamFailureError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, scoped to the driver. An order that belongs
// to another driver is reported as not found.
func (r *GormOrderRepository) Get(ctx context.Context, id, driverID kernel.UUID) (*order.Order, error) {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND driver_id = ?", id.Bytes(), driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewUpstreamFailureError("get order", err)
	}

	return toDomain(dto)
}

// UpdateStatus persists a state transition as a conditional update keyed on
// the status the aggregate had when it was loaded. A concurrent transition
// makes the condition miss and the caller gets ConcurrentModificationError
// instead of silently overwriting the newer state.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, previousStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := previousStatus.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), previousStatus.String()).
		Updates(map[string]any{
			"status":          aggregate.Status().String(),
			"completion_time": aggregate.CompletionTime(),
			"remark":          aggregate.Remark(),
			"photo_proof":     aggregate.PhotoProof(),
		})
	if result.Error != nil {
		return errs.NewUpstreamFailureError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByRange retrieves the driver's orders created within [from, to),
// newest first.
func (r *GormOrderRepository) GetAllByRange(ctx context.Context, driverID kernel.UUID, from, to time.Time) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND created_at >= ? AND created_at < ?", driverID.Bytes(), from, to).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamFailureError("get orders by range", err)
	}

	return toDomainSlice(dtos)
}

// GetRecent retrieves the driver's newest orders, up to limit.
func (r *GormOrderRepository) GetRecent(ctx context.Context, driverID kernel.UUID, limit int) ([]*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID.Bytes()).
		Order("created_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamFailureError("get recent orders", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
