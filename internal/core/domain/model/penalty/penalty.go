package penalty

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

var (
	// ErrPenaltyIsNotConstructed is returned when a Penalty instance was not
	// created through the NewPenalty or RestorePenalty factory methods.
	ErrPenaltyIsNotConstructed = errors.New("Penalty must be created via NewPenalty or RestorePenalty")

	// ErrAppealNotAllowed is returned when appealing a penalty that is not
	// appealable or already has an appeal.
	ErrAppealNotAllowed = errors.New("penalty cannot be appealed")
)

// Penalty is a disciplinary charge issued against a driver. A penalty may
// allow exactly one appeal; submitting it moves the appeal status from
// "none" to "pending". Reviewing the appeal (approve/reject) is done by
// back-office staff outside this app.
type Penalty struct {
	id       kernel.UUID
	driverID kernel.UUID

	// orderID links the penalty to the order it was issued for, when there
	// is one.
	orderID *kernel.UUID

	reason   string
	amount   kernel.Money
	severity Severity
	status   Status

	canAppeal       bool
	appealStatus    AppealStatus
	appealReason    string
	resolutionNotes string

	issuedAt time.Time

	isConstructed bool
}

// NewPenalty issues a new penalty against a driver. The penalty starts
// active with no appeal.
func NewPenalty(
	id, driverID kernel.UUID,
	orderID *kernel.UUID,
	reason string,
	amount kernel.Money,
	severity Severity,
	canAppeal bool,
	issuedAt time.Time,
) (*Penalty, error) {
	p := &Penalty{
		amount:        amount,
		severity:      severity,
		status:        StatusPending,
		canAppeal:     canAppeal,
		appealStatus:  AppealStatusNone,
		issuedAt:      issuedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDriverID(driverID),
		p.setReason(reason),
		severity.Validate(),
	); err != nil {
		return nil, err
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
		linked := *orderID
		p.orderID = &linked
	}

	return p, nil
}

// RestorePenalty reconstructs a Penalty from persistence.
func RestorePenalty(
	id, driverID kernel.UUID,
	orderID *kernel.UUID,
	reason string,
	amount kernel.Money,
	severity Severity,
	status Status,
	canAppeal bool,
	appealStatus AppealStatus,
	appealReason string,
	resolutionNotes string,
	issuedAt time.Time,
) (*Penalty, error) {
	p, err := NewPenalty(id, driverID, orderID, reason, amount, severity, canAppeal, issuedAt)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		status.Validate(),
		appealStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if appealStatus != AppealStatusNone && appealReason == "" {
		return nil, errs.NewValueIsRequiredError("appeal reason")
	}

	p.status = status
	p.appealStatus = appealStatus
	p.appealReason = appealReason
	p.resolutionNotes = resolutionNotes
	return p, nil
}

// Validate ensures the Penalty instance was properly constructed through a
// factory method.
func (p *Penalty) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPenaltyIsNotConstructed
	}
	return nil
}

// ID returns the penalty's unique identifier.
func (p *Penalty) ID() kernel.UUID {
	return p.id
}

// DriverID returns the identifier of the penalized driver.
func (p *Penalty) DriverID() kernel.UUID {
	return p.driverID
}

// OrderID returns the linked order, or nil when the penalty is not tied to
// a specific order.
func (p *Penalty) OrderID() *kernel.UUID {
	if p.orderID == nil {
		return nil
	}
	linked := *p.orderID
	return &linked
}

// Reason returns why the penalty was issued.
func (p *Penalty) Reason() string {
	return p.reason
}

// Amount returns the monetary value of the penalty.
func (p *Penalty) Amount() kernel.Money {
	return p.amount
}

// Severity returns how serious the penalty is.
func (p *Penalty) Severity() Severity {
	return p.severity
}

// Status returns the lifecycle status of the penalty itself.
func (p *Penalty) Status() Status {
	return p.status
}

// CanAppeal reports whether the penalty permits an appeal at all.
func (p *Penalty) CanAppeal() bool {
	return p.canAppeal
}

// AppealStatus returns the state of the appeal, if any.
func (p *Penalty) AppealStatus() AppealStatus {
	return p.appealStatus
}

// AppealReason returns the driver's appeal text, if an appeal was submitted.
func (p *Penalty) AppealReason() string {
	return p.appealReason
}

// ResolutionNotes returns the back-office notes recorded when the penalty
// or its appeal was processed.
func (p *Penalty) ResolutionNotes() string {
	return p.resolutionNotes
}

// IssuedAt returns when the penalty was issued.
func (p *Penalty) IssuedAt() time.Time {
	return p.issuedAt
}

// SubmitAppeal files the driver's appeal. Allowed only for appealable
// penalties that are still pending and have no appeal yet; the reason is
// mandatory.
func (p *Penalty) SubmitAppeal(reason string) error {
	if !p.canAppeal || p.status != StatusPending || p.appealStatus != AppealStatusNone {
		return ErrAppealNotAllowed
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("appeal reason")
	}

	p.appealStatus = AppealStatusPending
	p.appealReason = reason
	return nil
}

func (p *Penalty) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Penalty) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	p.driverID = driverID
	return nil
}

func (p *Penalty) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	p.reason = reason
	return nil
}
