package commands

import (
	"context"
	"errors"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

// ErrDriverAlreadyRegistered is returned when the auth identity already has
// a driver record.
var ErrDriverAlreadyRegistered = errors.New("driver is already registered for this identity")

// RegisterDriverCommandHandler handles driver signup.
// Creates the driver record mapped to the authentication identity; the
// identity itself is issued by the external auth provider.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Refuses when a driver already exists for the identity.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
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

	_, err := driverRepo.GetByAuthID(ctx, cmd.AuthID())
	if err == nil {
		return ErrDriverAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newDriver, err := driver.NewDriver(
		kernel.NewUUID(),
		cmd.AuthID(),
		cmd.FullName(),
		cmd.Phone(),
		cmd.VehicleNumber(),
		cmd.VehicleType(),
	)
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, newDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
