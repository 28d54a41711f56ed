package driver

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession or RestoreSession factory methods.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

	// ErrSessionAlreadyClosed is returned when closing a session whose end
	// time is already set.
	ErrSessionAlreadyClosed = errors.New("session is already closed")
)

// Session is a single work shift. A session is open while its end time is
// unset; each driver has at most one open session at a time, which the
// application layer enforces before opening a new one.
type Session struct {
	id       kernel.UUID
	driverID kernel.UUID

	startTime time.Time
	endTime   *time.Time

	isConstructed bool
}

// NewSession opens a shift for the driver starting at the given time.
func NewSession(id, driverID kernel.UUID, startTime time.Time) (*Session, error) {
	s := &Session{
		startTime:     startTime,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setDriverID(driverID),
	); err != nil {
		return nil, err
	}

	if startTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("start time")
	}

	return s, nil
}

// RestoreSession reconstructs a Session from persistence. A nil endTime
// means the session is still open.
func RestoreSession(id, driverID kernel.UUID, startTime time.Time, endTime *time.Time) (*Session, error) {
	s, err := NewSession(id, driverID, startTime)
	if err != nil {
		return nil, err
	}

	if endTime != nil {
		if !endTime.After(startTime) {
			return nil, errs.NewValueIsInvalidError("end time")
		}
		end := *endTime
		s.endTime = &end
	}

	return s, nil
}

// Validate ensures the Session instance was properly constructed through a
// factory method.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// DriverID returns the owning driver's identifier.
func (s *Session) DriverID() kernel.UUID {
	return s.driverID
}

// StartTime returns when the shift started.
func (s *Session) StartTime() time.Time {
	return s.startTime
}

// EndTime returns when the shift ended, or nil while it is open.
func (s *Session) EndTime() *time.Time {
	if s.endTime == nil {
		return nil
	}
	end := *s.endTime
	return &end
}

// IsOpen reports whether the shift is still in progress.
func (s *Session) IsOpen() bool {
	return s.endTime == nil
}

// Close ends the shift at the given time. The end time is set exactly once;
// closing an already closed session fails with ErrSessionAlreadyClosed.
func (s *Session) Close(endTime time.Time) error {
	if s.endTime != nil {
		return ErrSessionAlreadyClosed
	}
	if !endTime.After(s.startTime) {
		return errs.NewValueIsInvalidError("end time")
	}

	end := endTime
	s.endTime = &end
	return nil
}

// ActiveWithin returns the portion of the session that overlaps the
// half-open window [from, to). An open session is treated as running
// until now. Returns zero when there is no overlap.
func (s *Session) ActiveWithin(from, to, now time.Time) time.Duration {
	end := now
	if s.endTime != nil {
		end = *s.endTime
	}

	start := s.startTime
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}

	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	s.driverID = driverID
	return nil
}
