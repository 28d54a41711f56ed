package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrSubmitPenaltyAppealCommandIsNotConstructed = errors.New(
	"SubmitPenaltyAppealCommand must be created via NewSubmitPenaltyAppealCommand constructor",
)

// SubmitPenaltyAppealCommand represents a driver's appeal against a penalty.
type SubmitPenaltyAppealCommand struct { //nolint:recvcheck //using for validation
	penaltyID kernel.UUID
	driverID  kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewSubmitPenaltyAppealCommand creates a command to file an appeal.
// The reason is mandatory.
func NewSubmitPenaltyAppealCommand(penaltyID, driverID kernel.UUID, reason string) (SubmitPenaltyAppealCommand, error) {
	command := SubmitPenaltyAppealCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPenaltyID(penaltyID),
		command.setDriverID(driverID),
		command.setReason(reason),
	); err != nil {
		return SubmitPenaltyAppealCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPenaltyAppealCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPenaltyAppealCommandIsNotConstructed)
}

// PenaltyID returns the appealed penalty.
func (c SubmitPenaltyAppealCommand) PenaltyID() kernel.UUID {
	return c.penaltyID
}

// DriverID returns the appealing driver.
func (c SubmitPenaltyAppealCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns the appeal text.
func (c SubmitPenaltyAppealCommand) Reason() string {
	return c.reason
}

func (c *SubmitPenaltyAppealCommand) setPenaltyID(penaltyID kernel.UUID) error {
	if err := penaltyID.Validate(); err != nil {
		return err
	}
	c.penaltyID = penaltyID
	return nil
}

func (c *SubmitPenaltyAppealCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *SubmitPenaltyAppealCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
