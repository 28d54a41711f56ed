package commands

import (
	"context"
	"time"

	"driverhub/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler is the single write path for order state.
// Loads the order under driver scoping, applies the domain transition and
// persists it with a conditional update keyed on the previous status.
//
// Same-status resubmissions (double taps, client retries) are detected by
// the aggregate as no-ops and nothing is persisted. A conditional update
// that matches zero rows means another request moved the order first; the
// repository reports ConcurrentModificationError and the client refetches.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}

	previousStatus := aggregate.Status()

	switch cmd.TargetStatus() {
	case order.Delivered:
		err = aggregate.Deliver(cmd.DeliveryMethod(), cmd.PhotoProof(), time.Now().UTC())
	case order.Cancelled:
		err = aggregate.Cancel(cmd.CancelReason())
	default:
		err = aggregate.Advance(cmd.TargetStatus())
	}
	if err != nil {
		return err
	}

	// idempotent resubmission, nothing to persist
	if aggregate.Status() == previousStatus {
		return nil
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, previousStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
