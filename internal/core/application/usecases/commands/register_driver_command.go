package commands

import (
	"errors"

	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a signup request for an authenticated
// identity that has no driver record yet.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	authID        string
	fullName      string
	phone         string
	vehicleNumber string
	vehicleType   string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a new driver.
// Auth identity, full name and phone are mandatory.
func NewRegisterDriverCommand(authID, fullName, phone, vehicleNumber, vehicleType string) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAuthID(authID),
		command.setFullName(fullName),
		command.setPhone(phone),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// AuthID returns the authentication provider identity.
func (c RegisterDriverCommand) AuthID() string {
	return c.authID
}

// FullName returns the driver's display name.
func (c RegisterDriverCommand) FullName() string {
	return c.fullName
}

// Phone returns the driver's contact number.
func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

// VehicleNumber returns the vehicle registration number.
func (c RegisterDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the vehicle kind.
func (c RegisterDriverCommand) VehicleType() string {
	return c.vehicleType
}

func (c *RegisterDriverCommand) setAuthID(authID string) error {
	if authID == "" {
		return errs.NewValueIsRequiredError("auth id")
	}
	c.authID = authID
	return nil
}

func (c *RegisterDriverCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	c.fullName = fullName
	return nil
}

func (c *RegisterDriverCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
