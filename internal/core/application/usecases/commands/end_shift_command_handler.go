package commands

import (
	"context"
	"time"
)

// EndShiftCommandHandler closes the driver's open session and marks the
// driver inactive. The session end time is set exactly once; a driver with
// no open session gets ObjectNotFoundError from the repository.
type EndShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewEndShiftCommandHandler creates a handler for shift stop operations.
func NewEndShiftCommandHandler(uowFactory ShiftUoWFactory) EndShiftCommandHandler {
	return EndShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift stop command.
func (h *EndShiftCommandHandler) Handle(ctx context.Context, cmd EndShiftCommand) error {
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

	sessionRepo := uow.SessionRepository()

	session, err := sessionRepo.GetOpenByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = session.Close(time.Now().UTC()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	aggregate.Deactivate()
	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
