package queries

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrRecentActivityQueryIsNotConstructed = errors.New(
	"RecentActivityQuery must be created via NewRecentActivityQuery constructor",
)

const maxRecentActivityLimit = 50

// RecentActivityQuery retrieves the driver's newest orders for the home
// screen feed.
type RecentActivityQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewRecentActivityQuery creates a query for the newest orders.
// The limit must be between 1 and 50.
func NewRecentActivityQuery(driverID kernel.UUID, limit int) (RecentActivityQuery, error) {
	query := RecentActivityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDriverID(driverID),
		query.setLimit(limit),
	); err != nil {
		return RecentActivityQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q RecentActivityQuery) Validate() error {
	return q.guard.Validate(ErrRecentActivityQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q RecentActivityQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Limit returns the maximum number of orders to return.
func (q RecentActivityQuery) Limit() int {
	return q.limit
}

func (q *RecentActivityQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

func (q *RecentActivityQuery) setLimit(limit int) error {
	if limit < 1 || limit > maxRecentActivityLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxRecentActivityLimit)
	}
	q.limit = limit
	return nil
}
