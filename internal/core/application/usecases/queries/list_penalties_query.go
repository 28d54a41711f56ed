package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrListPenaltiesQueryIsNotConstructed = errors.New(
	"ListPenaltiesQuery must be created via NewListPenaltiesQuery constructor",
)

// ListPenaltiesQuery retrieves the driver's penalties split into active and
// resolved buckets.
type ListPenaltiesQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListPenaltiesQuery creates a query for the driver's penalties.
func NewListPenaltiesQuery(driverID kernel.UUID) (ListPenaltiesQuery, error) {
	query := ListPenaltiesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDriverID(driverID); err != nil {
		return ListPenaltiesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPenaltiesQuery) Validate() error {
	return q.guard.Validate(ErrListPenaltiesQueryIsNotConstructed)
}

// DriverID returns the requesting driver.
func (q ListPenaltiesQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *ListPenaltiesQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// PenaltyResponse is the read model of one penalty.
type PenaltyResponse struct {
	ID              kernel.UUID
	OrderID         *kernel.UUID
	Reason          string
	Amount          string
	Severity        string
	Status          string
	CanAppeal       bool
	AppealStatus    string
	AppealReason    string
	ResolutionNotes string
	IssuedAt        time.Time
}

// ListPenaltiesResponse groups the driver's penalties. Active holds pending
// penalties, Resolved holds processed and cancelled ones. Both lists are
// ordered newest first.
type ListPenaltiesResponse struct {
	Active   []PenaltyResponse
	Resolved []PenaltyResponse
}
