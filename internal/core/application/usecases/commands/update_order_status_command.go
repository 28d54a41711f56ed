package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a driver's request to move an order
// along its lifecycle. The target status decides which metadata matters:
// delivered needs a delivery method and a photo proof, cancelled needs a
// reason, plain forward steps need nothing.
//
// Example:
//
//	target, _ := order.StatusFromString("delivered")
//	cmd, err := NewUpdateOrderStatusCommand(orderID, driverID, target,
//	    "cash", "proofs/42.jpg", "")
//	if err != nil {
//	    return fmt.Errorf("invalid status update: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrIllegalTransition, errs.ErrMissingRequiredData,
//	    // errs.ErrConcurrentModification or errs.ErrObjectNotFound
//	    return err
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	driverID     kernel.UUID
	targetStatus order.Status

	deliveryMethod string
	photoProof     string
	cancelReason   string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command.
// The target status must be a known status; metadata completeness is the
// domain's concern and is checked by the order aggregate, not here.
func NewUpdateOrderStatusCommand(
	orderID, driverID kernel.UUID,
	targetStatus order.Status,
	deliveryMethod, photoProof, cancelReason string,
) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		deliveryMethod: deliveryMethod,
		photoProof:     photoProof,
		cancelReason:   cancelReason,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
		command.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the requesting driver; updates are scoped to it.
func (c UpdateOrderStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TargetStatus returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// DeliveryMethod returns how the order was handed over (delivered only).
func (c UpdateOrderStatusCommand) DeliveryMethod() string {
	return c.deliveryMethod
}

// PhotoProof returns the storage reference of the proof photo (delivered only).
func (c UpdateOrderStatusCommand) PhotoProof() string {
	return c.photoProof
}

// CancelReason returns why the order is cancelled (cancelled only).
func (c UpdateOrderStatusCommand) CancelReason() string {
	return c.cancelReason
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *UpdateOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	c.targetStatus = targetStatus
	return nil
}
