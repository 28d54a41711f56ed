package kernel

import (
	"fmt"
	"time"

	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

// ErrTimeRangeIsNotConstructed is returned when attempting to use an improperly
// initialized TimeRange. Ranges must be created via NewTimeRange.
var ErrTimeRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"time range must be created via NewTimeRange constructor")

// TimeRange is an immutable half-open time window [start, end).
// The start is inclusive and the end is exclusive, which makes adjacent
// windows (today, this week, this month) compose without double counting.
//
// Example:
//
//	window, err := kernel.NewTimeRange(startOfDay, startOfNextDay)
//	if window.Contains(order.CreatedAt()) { ... }
type TimeRange struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewTimeRange creates a validated [start, end) window.
// Returns an error if end is not strictly after start.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, errs.NewValueIsInvalidErrorWithCause(
			"time range", fmt.Errorf("end %s is not after start %s", end, start))
	}
	return TimeRange{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the range was created through the constructor.
func (r TimeRange) Validate() error {
	return r.guard.Validate(ErrTimeRangeIsNotConstructed)
}

// Start returns the inclusive lower bound.
func (r TimeRange) Start() time.Time {
	return r.start
}

// End returns the exclusive upper bound.
func (r TimeRange) End() time.Time {
	return r.end
}

// Contains reports whether t falls inside [start, end).
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}

// Duration returns end minus start.
func (r TimeRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}
