package order

import (
	"fmt"

	"driverhub/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Confirmed ──> Accepted ──> OnWay ──> Reached ──> Delivered
//	    │             │          │          │
//	    └─────────────┴──────────┴──────────┴──> Cancelled
//
// The forward chain is a strict total order with no skipping. Delivered and
// Cancelled are terminal: no transitions lead out of them. Re-submitting the
// current status is treated as an idempotent no-op by the aggregate, not an
// error.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display. Its methods are the
// single source of transition truth; no other component decides legality.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status when an order is dispatched to a driver.
	Confirmed

	// Accepted indicates the driver has taken on the delivery.
	Accepted

	// OnWay indicates the driver is en route to the destination.
	OnWay

	// Reached indicates the driver has arrived at the destination.
	Reached

	// Delivered indicates the order was handed over successfully.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the delivery was abandoned with a reason.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Confirmed: "confirmed",
		Accepted:  "accepted",
		OnWay:     "on_way",
		Reached:   "reached",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed: "confirmed",
		Accepted:  "accepted",
		OnWay:     "on_way",
		Reached:   "reached",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the persisted or wire representation of a status.
// Returns an error for anything outside the closed set of valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Confirmed, Accepted, OnWay, Reached, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("confirmed", "on_way", ...).
// Returns "unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// next returns the immediate successor in the forward chain, or Unknown
// when the status has no forward successor.
func (s Status) next() Status {
	switch s {
	case Confirmed:
		return Accepted
	case Accepted:
		return OnWay
	case OnWay:
		return Reached
	case Reached:
		return Delivered
	default:
		return Unknown
	}
}

// CanTransitionTo checks whether a transition from s to target is legal
// without performing it.
//
// Rules:
//   - re-submitting the current status is allowed (idempotent no-op)
//   - terminal states allow nothing else
//   - any non-terminal status may move to Cancelled
//   - otherwise only the single next step of the forward chain is allowed
//
// Returns nil if the transition is legal, or an IllegalTransitionError
// naming both states if it is not.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == s {
		return nil
	}
	if s.IsTerminal() {
		return errs.NewIllegalTransitionError(s.String(), target.String())
	}
	if target == Cancelled {
		return nil
	}
	if target == s.next() {
		return nil
	}

	return errs.NewIllegalTransitionError(s.String(), target.String())
}

// TransitionTo validates and performs a transition, returning the new status.
//
// Returns:
//   - (target, nil) on a legal transition (including the no-op case)
//   - (Unknown, error) if the transition is not allowed
//
// This method is used by the Order aggregate to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return Unknown, err
	}

	return target, nil
}
