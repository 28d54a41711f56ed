package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrStartShiftCommandIsNotConstructed = errors.New(
	"StartShiftCommand must be created via NewStartShiftCommand constructor",
)

// StartShiftCommand represents a driver going on duty.
type StartShiftCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartShiftCommand creates a command to open a work session.
func NewStartShiftCommand(driverID kernel.UUID) (StartShiftCommand, error) {
	command := StartShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return StartShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShiftCommand) Validate() error {
	return c.guard.Validate(ErrStartShiftCommandIsNotConstructed)
}

// DriverID returns the driver going on duty.
func (c StartShiftCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartShiftCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
