package commands

import (
	"context"
	"time"
)

// CloseExpiredShiftsCommandHandler performs the end-of-day close.
// Ends every open session and deactivates every active driver in one
// transaction; sessions and flags stay consistent even when drivers forgot
// to stop their shifts.
type CloseExpiredShiftsCommandHandler struct {
	uowFactory ShiftUoWFactory
}

// NewCloseExpiredShiftsCommandHandler creates a handler for the batch close.
func NewCloseExpiredShiftsCommandHandler(uowFactory ShiftUoWFactory) CloseExpiredShiftsCommandHandler {
	return CloseExpiredShiftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch close command.
func (h *CloseExpiredShiftsCommandHandler) Handle(ctx context.Context, cmd CloseExpiredShiftsCommand) error {
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

	now := time.Now().UTC()
	sessionRepo := uow.SessionRepository()

	sessions, err := sessionRepo.GetAllOpen(ctx)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		if err = session.Close(now); err != nil {
			return err
		}
		if err = sessionRepo.Update(ctx, session); err != nil {
			return err
		}
	}

	driverRepo := uow.DriverRepository()

	drivers, err := driverRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range drivers {
		aggregate.Deactivate()
		if err = driverRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
