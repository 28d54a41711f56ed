package commands

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
)

// MarkNotificationReadCommand flips the read flag on one notification.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	driverID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
func NewMarkNotificationReadCommand(notificationID, driverID kernel.UUID) (MarkNotificationReadCommand, error) {
	command := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNotificationID(notificationID),
		command.setDriverID(driverID),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark read.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// DriverID returns the owning driver.
func (c MarkNotificationReadCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}
	c.notificationID = notificationID
	return nil
}

func (c *MarkNotificationReadCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

// MarkAllNotificationsReadCommand flips the read flag on every unread
// notification of a driver.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark all of the
// driver's notifications read.
func NewMarkAllNotificationsReadCommand(driverID kernel.UUID) (MarkAllNotificationsReadCommand, error) {
	command := MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// DriverID returns the owning driver.
func (c MarkAllNotificationsReadCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkAllNotificationsReadCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
