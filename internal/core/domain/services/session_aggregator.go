package services

import (
	"time"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
)

// SessionAggregator is a domain service that computes how much of a time
// window a driver spent on shift.
//
// The aggregation is a pure fold over already-fetched sessions: for each
// session, the overlap with the half-open window is summed, with open
// sessions (no end time) treated as running until now. Sessions closed
// out-of-band between reads simply contribute their closed overlap; the
// aggregator never mutates anything.
type SessionAggregator struct{}

// NewSessionAggregator creates a new SessionAggregator instance.
func NewSessionAggregator() SessionAggregator {
	return SessionAggregator{}
}

// ActiveTime returns the total shift time within the window. Sessions
// outside the window contribute nothing. Returns an error only when the
// window or a session fails construction validation.
func (a SessionAggregator) ActiveTime(sessions []*driver.Session, window kernel.TimeRange, now time.Time) (time.Duration, error) {
	if err := window.Validate(); err != nil {
		return 0, err
	}

	var total time.Duration
	for _, s := range sessions {
		if err := s.Validate(); err != nil {
			return 0, err
		}
		total += s.ActiveWithin(window.Start(), window.End(), now)
	}
	return total, nil
}

// ActiveMinutes returns ActiveTime truncated to whole minutes, the unit the
// shift time reports use.
func (a SessionAggregator) ActiveMinutes(sessions []*driver.Session, window kernel.TimeRange, now time.Time) (int, error) {
	total, err := a.ActiveTime(sessions, window, now)
	if err != nil {
		return 0, err
	}
	return int(total / time.Minute), nil
}
