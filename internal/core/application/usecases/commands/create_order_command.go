package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a delivery order
// pre-assigned to a driver. Orders enter the system in confirmed status;
// the assignment is immutable afterwards.
//
// Example:
//
//	amount, _ := kernel.NewMoneyFromString("250.50")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), driverID, amount,
//	    "cash", "Warehouse 1", "Main St 10", "call on arrival")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	driverID      kernel.UUID
	totalAmount   kernel.Money
	paymentMethod string
	start         string
	destination   string
	deliveryNotes string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, payment method and the route endpoints; delivery
// notes are optional.
func NewCreateOrderCommand(
	orderID, driverID kernel.UUID,
	totalAmount kernel.Money,
	paymentMethod, start, destination, deliveryNotes string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		totalAmount:   totalAmount,
		deliveryNotes: deliveryNotes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverID(driverID),
		command.setPaymentMethod(paymentMethod),
		command.setRoute(start, destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver the order is assigned to.
func (c CreateOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// TotalAmount returns the order value.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Start returns the pickup address.
func (c CreateOrderCommand) Start() string {
	return c.start
}

// Destination returns the drop-off address.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// DeliveryNotes returns optional handling instructions for the driver.
func (c CreateOrderCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setRoute(start, destination string) error {
	if start == "" {
		return errs.NewValueIsRequiredError("start")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.start = start
	c.destination = destination
	return nil
}
