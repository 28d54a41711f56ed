package commands

import (
	"errors"

	"driverhub/internal/pkg/guard"
)

var ErrCloseExpiredShiftsCommandIsNotConstructed = errors.New(
	"CloseExpiredShiftsCommand must be created via NewCloseExpiredShiftsCommand constructor",
)

// CloseExpiredShiftsCommand triggers the end-of-day close: every open
// session is ended and every active driver is deactivated.
//
// Example:
//
//	cmd := NewCloseExpiredShiftsCommand()
//	handler := NewCloseExpiredShiftsCommandHandler(uowFactory)
//
//	// Run daily by the scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("shift close failed: %v", err)
//	}
type CloseExpiredShiftsCommand struct {
	guard guard.ConstructorGuard
}

// NewCloseExpiredShiftsCommand creates a command to close all open shifts.
// This is a parameterless batch command.
func NewCloseExpiredShiftsCommand() CloseExpiredShiftsCommand {
	return CloseExpiredShiftsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CloseExpiredShiftsCommand) Validate() error {
	return c.guard.Validate(ErrCloseExpiredShiftsCommandIsNotConstructed)
}
