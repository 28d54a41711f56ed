package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrTrackTimeQueryIsNotConstructed = errors.New(
	"TrackTimeQuery must be created via NewTrackTimeQuery constructor",
)

// TrackTimeQuery retrieves the driver's working time for the last seven
// days, including the day that contains now.
type TrackTimeQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	now      time.Time

	guard guard.ConstructorGuard
}

// NewTrackTimeQuery creates a time tracking query anchored to now.
func NewTrackTimeQuery(driverID kernel.UUID, now time.Time) (TrackTimeQuery, error) {
	query := TrackTimeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return TrackTimeQuery{}, err
	}

	if now.IsZero() {
		return TrackTimeQuery{}, errs.NewValueIsRequiredError("now")
	}
	query.now = now

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackTimeQuery) Validate() error {
	return q.guard.Validate(ErrTrackTimeQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q TrackTimeQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Now returns the reference moment the window is anchored to.
func (q TrackTimeQuery) Now() time.Time {
	return q.now
}

func (q *TrackTimeQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// DayTimeResponse is one day's worked time within the tracked window.
type DayTimeResponse struct {
	Day     time.Time
	Minutes int
}

// TrackTimeResponse is the read model of the time tracking query. Days are
// ordered oldest first and cover the full seven-day window, including days
// with zero worked minutes. OnShift reports whether a session is open now.
type TrackTimeResponse struct {
	TotalMinutes int
	TodayMinutes int
	OnShift      bool
	Days         []DayTimeResponse
}
