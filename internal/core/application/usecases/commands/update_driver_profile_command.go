package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrUpdateDriverProfileCommandIsNotConstructed = errors.New(
	"UpdateDriverProfileCommand must be created via NewUpdateDriverProfileCommand constructor",
)

// UpdateDriverProfileCommand represents an edit of the driver's profile.
// Photo is a storage reference already uploaded by the client; empty means
// keep the current one.
type UpdateDriverProfileCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	fullName      string
	phone         string
	vehicleNumber string
	vehicleType   string
	photo         string

	guard guard.ConstructorGuard
}

// NewUpdateDriverProfileCommand creates a command to update profile fields.
func NewUpdateDriverProfileCommand(
	driverID kernel.UUID,
	fullName, phone, vehicleNumber, vehicleType, photo string,
) (UpdateDriverProfileCommand, error) {
	command := UpdateDriverProfileCommand{
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		photo:         photo,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setFullName(fullName),
		command.setPhone(phone),
	); err != nil {
		return UpdateDriverProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverProfileCommandIsNotConstructed)
}

// DriverID returns the driver whose profile is edited.
func (c UpdateDriverProfileCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FullName returns the new display name.
func (c UpdateDriverProfileCommand) FullName() string {
	return c.fullName
}

// Phone returns the new contact number.
func (c UpdateDriverProfileCommand) Phone() string {
	return c.phone
}

// VehicleNumber returns the new vehicle registration number.
func (c UpdateDriverProfileCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the new vehicle kind.
func (c UpdateDriverProfileCommand) VehicleType() string {
	return c.vehicleType
}

// Photo returns the new photo storage reference, or empty to keep the
// current one.
func (c UpdateDriverProfileCommand) Photo() string {
	return c.photo
}

func (c *UpdateDriverProfileCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *UpdateDriverProfileCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	c.fullName = fullName
	return nil
}

func (c *UpdateDriverProfileCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
