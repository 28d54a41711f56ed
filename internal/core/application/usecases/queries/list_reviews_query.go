package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrListReviewsQueryIsNotConstructed = errors.New(
	"ListReviewsQuery must be created via NewListReviewsQuery constructor",
)

// ListReviewsQuery retrieves the customer reviews left for the driver
// together with a rating summary.
type ListReviewsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListReviewsQuery creates a query for the driver's reviews.
func NewListReviewsQuery(driverID kernel.UUID) (ListReviewsQuery, error) {
	query := ListReviewsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return ListReviewsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

// DriverID returns the reviewed driver.
func (q ListReviewsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *ListReviewsQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// ReviewResponse is the read model of one customer review.
type ReviewResponse struct {
	ID           kernel.UUID
	OrderID      *kernel.UUID
	Rating       int
	Comment      string
	ReviewerName string
	CreatedAt    time.Time
}

// RatingSummaryResponse aggregates the driver's ratings. Breakdown counts
// reviews per star, index 0 holding one-star reviews.
type RatingSummaryResponse struct {
	Average   string
	Count     int
	Breakdown [5]int
}

// ListReviewsResponse lists the driver's reviews newest first together with
// the rating summary.
type ListReviewsResponse struct {
	Reviews []ReviewResponse
	Summary RatingSummaryResponse
}
