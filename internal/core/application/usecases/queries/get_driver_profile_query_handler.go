package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

// GetDriverProfileQueryHandler resolves a driver profile from the auth
// identity the transport layer saw.
type GetDriverProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverProfileQueryHandler creates a handler for the profile query.
func NewGetDriverProfileQueryHandler(db *gorm.DB) GetDriverProfileQueryHandler {
	return GetDriverProfileQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDriverProfileQueryHandler) Handle(ctx context.Context, query GetDriverProfileQuery) (DriverProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, auth_id, full_name, phone, vehicle_number, vehicle_type, photo, is_active
		FROM drivers
		WHERE auth_id = ?
	`, query.AuthID()).Row()

	var (
		id            uuid.UUID
		authID        string
		fullName      string
		phone         string
		vehicleNumber string
		vehicleType   string
		photo         sql.NullString
		isActive      bool
	)

	err := row.Scan(&id, &authID, &fullName, &phone, &vehicleNumber, &vehicleType, &photo, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DriverProfileResponse{}, errs.NewObjectNotFoundError("authID", query.AuthID())
		}
		return DriverProfileResponse{}, err
	}

	driverID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DriverProfileResponse{}, err
	}

	return DriverProfileResponse{
		ID:            driverID,
		AuthID:        authID,
		FullName:      fullName,
		Phone:         phone,
		VehicleNumber: vehicleNumber,
		VehicleType:   vehicleType,
		Photo:         photo.String,
		IsActive:      isActive,
	}, nil
}
