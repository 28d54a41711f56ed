package commands

import (
	"context"
)

// UpdateDriverProfileCommandHandler applies profile edits to a driver.
type UpdateDriverProfileCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverProfileCommandHandler creates a handler for profile updates.
func NewUpdateDriverProfileCommandHandler(uowFactory DriverUoWFactory) UpdateDriverProfileCommandHandler {
	return UpdateDriverProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateDriverProfileCommandHandler) Handle(ctx context.Context, cmd UpdateDriverProfileCommand) error {
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

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProfile(cmd.FullName(), cmd.Phone(), cmd.VehicleNumber(), cmd.VehicleType()); err != nil {
		return err
	}

	if cmd.Photo() != "" {
		if err = aggregate.AttachPhoto(cmd.Photo()); err != nil {
			return err
		}
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
