package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrListOrdersByDayQueryIsNotConstructed = errors.New(
	"ListOrdersByDayQuery must be created via NewListOrdersByDayQuery constructor",
)

// ListOrdersByDayQuery retrieves the driver's orders for one calendar day,
// bucketed by progress the way the orders screen shows them.
type ListOrdersByDayQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	day      time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersByDayQuery creates a query for a day's orders.
// The day is truncated to midnight in its own location.
func NewListOrdersByDayQuery(driverID kernel.UUID, day time.Time) (ListOrdersByDayQuery, error) {
	query := ListOrdersByDayQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return ListOrdersByDayQuery{}, err
	}

	if day.IsZero() {
		return ListOrdersByDayQuery{}, errs.NewValueIsRequiredError("day")
	}
	year, month, dayOfMonth := day.Date()
	query.day = time.Date(year, month, dayOfMonth, 0, 0, 0, 0, day.Location())

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersByDayQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByDayQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q ListOrdersByDayQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Day returns midnight of the requested day.
func (q ListOrdersByDayQuery) Day() time.Time {
	return q.day
}

func (q *ListOrdersByDayQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// OrdersByDayResponse groups a day's orders by progress.
// Active holds everything still in flight, Completed the delivered ones,
// Cancelled the rest.
type OrdersByDayResponse struct {
	Active    []OrderResponse
	Completed []OrderResponse
	Cancelled []OrderResponse
}
