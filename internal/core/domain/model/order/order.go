package order

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one delivery task assigned to a driver. It is the aggregate
// root that manages the order lifecycle from dispatch through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for the order and the assigned driver
//   - The driver assignment is set at creation and immutable thereafter
//   - CompletionTime is nil until the order reaches Delivered
//   - Once Delivered or Cancelled, no further status transition is permitted
//   - Status transitions follow the state machine in Status
//
// The struct uses private fields to ensure encapsulation; the only write path
// for order state is the transition methods Advance, Deliver, and Cancel.
type Order struct {
	id       kernel.UUID
	driverID kernel.UUID

	status Status

	totalAmount   kernel.Money
	paymentMethod string
	paymentStatus string

	createdAt      time.Time
	completionTime *time.Time

	start         string
	destination   string
	deliveryNotes string

	// remark holds the cancellation reason or the delivery-method note.
	remark string

	// photoProof is a storage reference, set only when the order is delivered.
	photoProof string

	isConstructed bool
}

// NewOrder creates a new Order pre-assigned to a driver, in Confirmed status.
// The driver assignment is immutable for the lifetime of the order.
//
// Parameters:
//   - id: unique identifier for the order
//   - driverID: the assigned driver
//   - totalAmount: the order total (exact decimal, non-negative)
//   - paymentMethod: how the customer pays ("cash", "upi", ...)
//   - start, destination: free-text location descriptors
//   - deliveryNotes: optional customer instructions
//   - createdAt: dispatch time
//
// Returns a validation error if any identifier is invalid or a required
// descriptor is empty.
func NewOrder(
	id kernel.UUID,
	driverID kernel.UUID,
	totalAmount kernel.Money,
	paymentMethod string,
	start string,
	destination string,
	deliveryNotes string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Confirmed,
		paymentStatus: "pending",
		createdAt:     createdAt,
		deliveryNotes: deliveryNotes,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDriverID(driverID),
		order.setTotalAmount(totalAmount),
		order.setPaymentMethod(paymentMethod),
		order.setRoute(start, destination),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// creation-time defaults. It validates the cross-field invariants so that
// corrupted rows cannot re-enter the domain:
//   - the status must be valid
//   - completionTime must be set if and only if the order is Delivered
func RestoreOrder(
	id kernel.UUID,
	driverID kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	paymentMethod string,
	paymentStatus string,
	createdAt time.Time,
	completionTime *time.Time,
	start string,
	destination string,
	deliveryNotes string,
	remark string,
	photoProof string,
) (*Order, error) {
	order := &Order{
		paymentStatus:  paymentStatus,
		createdAt:      createdAt,
		completionTime: completionTime,
		deliveryNotes:  deliveryNotes,
		remark:         remark,
		photoProof:     photoProof,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDriverID(driverID),
		order.setTotalAmount(totalAmount),
		order.setPaymentMethod(paymentMethod),
		order.setRoute(start, destination),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	if (completionTime != nil) != (status == Delivered) {
		return nil, errs.NewValueIsInvalidError("completion time")
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DriverID returns the assigned driver's identifier.
// The assignment is set at creation and never changes.
func (o *Order) DriverID() kernel.UUID {
	return o.driverID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the payment settlement state.
func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

// CreatedAt returns the dispatch time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletionTime returns the delivery time, or nil while the order is not
// yet Delivered.
func (o *Order) CompletionTime() *time.Time {
	return o.completionTime
}

// Start returns the pickup location descriptor.
func (o *Order) Start() string {
	return o.start
}

// Destination returns the drop-off location descriptor.
func (o *Order) Destination() string {
	return o.destination
}

// DeliveryNotes returns the customer's delivery instructions.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// Remark returns the cancellation reason or delivery-method note.
func (o *Order) Remark() string {
	return o.remark
}

// PhotoProof returns the storage reference of the delivery photo,
// empty until the order is Delivered.
func (o *Order) PhotoProof() string {
	return o.photoProof
}

// BelongsTo reports whether the order is assigned to the given driver.
func (o *Order) BelongsTo(driverID kernel.UUID) bool {
	return o.driverID.IsEqual(driverID)
}

// Advance moves the order one step along the forward chain
// (Confirmed → Accepted → OnWay → Reached).
//
// Re-submitting the current status is an idempotent no-op. Delivered and
// Cancelled cannot be entered through Advance; those transitions carry
// required metadata and go through Deliver and Cancel.
//
// Returns an IllegalTransitionError if the step is not the single next one,
// or the order is in a terminal state.
func (o *Order) Advance(target Status) error {
	if target == o.status {
		return nil
	}
	if target == Delivered || target == Cancelled {
		return errs.NewIllegalTransitionErrorWithCause(
			o.status.String(), target.String(),
			errors.New("transition requires metadata, use Deliver or Cancel"))
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver completes the order.
//
// Business rules:
//   - the order must be in Reached status (or already Delivered, in which
//     case the call is an idempotent no-op that alters nothing)
//   - a non-empty delivery method and photo-proof reference are required;
//     absence of either fails with MissingRequiredDataError and nothing
//     is changed
//
// On success the status becomes Delivered, the completion time is recorded,
// the remark holds the delivery method, and the photo proof is attached.
func (o *Order) Deliver(method string, photoProof string, at time.Time) error {
	if o.status == Delivered {
		return nil
	}

	if err := o.status.CanTransitionTo(Delivered); err != nil {
		return err
	}
	if method == "" {
		return errs.NewMissingRequiredDataError("delivery method")
	}
	if photoProof == "" {
		return errs.NewMissingRequiredDataError("photo proof")
	}

	completion := at
	o.status = Delivered
	o.completionTime = &completion
	o.remark = method
	o.photoProof = photoProof
	return nil
}

// Cancel abandons the order with a reason.
//
// Any non-terminal status may be cancelled. Cancelling an already cancelled
// order is an idempotent no-op; cancelling a Delivered order fails with
// IllegalTransitionError. A non-empty reason is required.
func (o *Order) Cancel(reason string) error {
	if o.status == Cancelled {
		return nil
	}

	if err := o.status.CanTransitionTo(Cancelled); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewMissingRequiredDataError("cancellation reason")
	}

	o.status = Cancelled
	o.remark = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setRoute(start, destination string) error {
	if start == "" {
		return errs.NewValueIsRequiredError("start")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.start = start
	o.destination = destination
	return nil
}
