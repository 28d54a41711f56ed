package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var (
	ErrEarningsRangeQueryIsNotConstructed = errors.New(
		"EarningsRangeQuery must be created via NewEarningsRangeQuery constructor",
	)
	ErrEarningsSummaryQueryIsNotConstructed = errors.New(
		"EarningsSummaryQuery must be created via NewEarningsSummaryQuery constructor",
	)
)

// EarningsRangeQuery retrieves the driver's earnings over a custom
// half-open [from, to) range together with the contributing orders.
type EarningsRangeQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	from     time.Time
	to       time.Time

	guard guard.ConstructorGuard
}

// NewEarningsRangeQuery creates an earnings query for a custom range.
func NewEarningsRangeQuery(driverID kernel.UUID, from, to time.Time) (EarningsRangeQuery, error) {
	query := EarningsRangeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return EarningsRangeQuery{}, err
	}

	if from.IsZero() || to.IsZero() {
		return EarningsRangeQuery{}, errs.NewValueIsRequiredError("range")
	}
	if !to.After(from) {
		return EarningsRangeQuery{}, errs.NewValueIsInvalidError("range")
	}
	query.from = from
	query.to = to

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q EarningsRangeQuery) Validate() error {
	return q.guard.Validate(ErrEarningsRangeQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q EarningsRangeQuery) DriverID() kernel.UUID {
	return q.driverID
}

// From returns the start of the range, inclusive.
func (q EarningsRangeQuery) From() time.Time {
	return q.from
}

// To returns the end of the range, exclusive.
func (q EarningsRangeQuery) To() time.Time {
	return q.to
}

func (q *EarningsRangeQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// EarningsSummaryQuery retrieves the driver's standard earnings breakdown:
// today, this week, this month and last month, all relative to one moment.
type EarningsSummaryQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	now      time.Time

	guard guard.ConstructorGuard
}

// NewEarningsSummaryQuery creates the standard earnings breakdown query.
func NewEarningsSummaryQuery(driverID kernel.UUID, now time.Time) (EarningsSummaryQuery, error) {
	query := EarningsSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return EarningsSummaryQuery{}, err
	}

	if now.IsZero() {
		return EarningsSummaryQuery{}, errs.NewValueIsRequiredError("now")
	}
	query.now = now

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q EarningsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrEarningsSummaryQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q EarningsSummaryQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Now returns the reference moment the periods are computed from.
func (q EarningsSummaryQuery) Now() time.Time {
	return q.now
}

func (q *EarningsSummaryQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// EarningsPeriod is one aggregated window: the exact total formatted with
// two decimals and the number of orders that contributed.
type EarningsPeriod struct {
	Total string
	Count int
}

// EarningsSummaryResponse is the standard four-window breakdown.
type EarningsSummaryResponse struct {
	Today     EarningsPeriod
	ThisWeek  EarningsPeriod
	ThisMonth EarningsPeriod
	LastMonth EarningsPeriod
}

// EarningsRangeResponse is the custom-range result: the window aggregate
// plus the contributing orders, newest first.
type EarningsRangeResponse struct {
	Period EarningsPeriod
	Orders []OrderResponse
}
