package queries

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var ErrGetDriverProfileQueryIsNotConstructed = errors.New(
	"GetDriverProfileQuery must be created via NewGetDriverProfileQuery constructor",
)

// GetDriverProfileQuery retrieves a driver profile by the external auth
// identity the transport layer authenticated.
type GetDriverProfileQuery struct { //nolint:recvcheck //using for validation
	authID string

	guard guard.ConstructorGuard
}

// NewGetDriverProfileQuery creates a query for one driver profile.
func NewGetDriverProfileQuery(authID string) (GetDriverProfileQuery, error) {
	query := GetDriverProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAuthID(authID); err != nil {
		return GetDriverProfileQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverProfileQueryIsNotConstructed)
}

// AuthID returns the external auth identity.
func (q GetDriverProfileQuery) AuthID() string {
	return q.authID
}

func (q *GetDriverProfileQuery) setAuthID(authID string) error {
	if authID == "" {
		return errs.NewValueIsRequiredError("authID")
	}
	q.authID = authID
	return nil
}

// DriverProfileResponse is the read model of a driver profile.
type DriverProfileResponse struct {
	ID            kernel.UUID
	AuthID        string
	FullName      string
	Phone         string
	VehicleNumber string
	VehicleType   string
	Photo         string
	IsActive      bool
}
