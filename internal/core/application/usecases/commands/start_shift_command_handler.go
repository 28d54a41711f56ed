package commands

import (
	"context"
	"errors"
	"time"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

// ErrShiftAlreadyOpen is returned when starting a shift while another one
// is still open for the same driver.
var ErrShiftAlreadyOpen = errors.New("driver already has an open shift")

// StartShiftCommandHandler opens a work session and marks the driver active.
// Enforces the one-open-session invariant: a driver with an open session
// cannot start another.
type StartShiftCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewStartShiftCommandHandler creates a handler for shift start operations.
func NewStartShiftCommandHandler(uowFactory ShiftUoWFactory) StartShiftCommandHandler {
	return StartShiftCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shift start command.
func (h *StartShiftCommandHandler) Handle(ctx context.Context, cmd StartShiftCommand) error {
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

	_, err := sessionRepo.GetOpenByDriver(ctx, cmd.DriverID())
	if err == nil {
		return ErrShiftAlreadyOpen
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	session, err := driver.NewSession(kernel.NewUUID(), cmd.DriverID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = sessionRepo.Add(ctx, session); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	aggregate.Activate()
	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
