package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrEndShiftCommandIsNotConstructed = errors.New(
	"EndShiftCommand must be created via NewEndShiftCommand constructor",
)

// EndShiftCommand represents a driver going off duty.
type EndShiftCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndShiftCommand creates a command to close the driver's open session.
func NewEndShiftCommand(driverID kernel.UUID) (EndShiftCommand, error) {
	command := EndShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return EndShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EndShiftCommand) Validate() error {
	return c.guard.Validate(ErrEndShiftCommandIsNotConstructed)
}

// DriverID returns the driver going off duty.
func (c EndShiftCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *EndShiftCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
