package driver

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not created
	// through the NewDriver or RestoreDriver factory methods.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Driver represents the authenticated user performing deliveries.
//
// The authentication provider supplies an opaque identity string (AuthID);
// the application maps it one-to-one to a driver record. A driver is active
// while on duty; the flag is flipped by starting and ending shifts and is
// force-cleared by the end-of-day job.
type Driver struct {
	id     kernel.UUID
	authID string

	fullName      string
	phone         string
	vehicleNumber string
	vehicleType   string

	// photo is a storage reference to the profile picture; may be empty.
	photo string

	isActive bool

	isConstructed bool
}

// NewDriver registers a new driver for an authenticated identity.
// New drivers start inactive (off duty).
func NewDriver(id kernel.UUID, authID, fullName, phone, vehicleNumber, vehicleType string) (*Driver, error) {
	d := &Driver{
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setAuthID(authID),
		d.setFullName(fullName),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	authID, fullName, phone, vehicleNumber, vehicleType, photo string,
	isActive bool,
) (*Driver, error) {
	d := &Driver{
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		photo:         photo,
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setAuthID(authID),
		d.setFullName(fullName),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed through a
// factory method.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// AuthID returns the opaque authentication-provider identity.
func (d *Driver) AuthID() string {
	return d.authID
}

// FullName returns the driver's display name.
func (d *Driver) FullName() string {
	return d.fullName
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleNumber returns the registration number of the driver's vehicle.
func (d *Driver) VehicleNumber() string {
	return d.vehicleNumber
}

// VehicleType returns the kind of vehicle ("bike", "scooter", ...).
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// Photo returns the storage reference of the profile picture, if any.
func (d *Driver) Photo() string {
	return d.photo
}

// IsActive reports whether the driver is currently on duty.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// Activate marks the driver on duty. Called when a shift starts.
func (d *Driver) Activate() {
	d.isActive = true
}

// Deactivate marks the driver off duty. Called when a shift ends,
// including the forced end-of-day close.
func (d *Driver) Deactivate() {
	d.isActive = false
}

// UpdateProfile changes the editable profile fields. The auth identity
// and the driver id are immutable.
func (d *Driver) UpdateProfile(fullName, phone, vehicleNumber, vehicleType string) error {
	if err := errors.Join(
		d.setFullName(fullName),
		d.setPhone(phone),
	); err != nil {
		return err
	}

	d.vehicleNumber = vehicleNumber
	d.vehicleType = vehicleType
	return nil
}

// AttachPhoto records the storage reference of an uploaded profile picture.
func (d *Driver) AttachPhoto(photo string) error {
	if photo == "" {
		return errs.NewValueIsRequiredError("photo")
	}
	d.photo = photo
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setAuthID(authID string) error {
	if authID == "" {
		return errs.NewValueIsRequiredError("auth id")
	}
	d.authID = authID
	return nil
}

func (d *Driver) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	d.fullName = fullName
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}
