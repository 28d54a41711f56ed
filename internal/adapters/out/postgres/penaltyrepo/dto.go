// Package penaltyrepo provides data transfer objects and mapping functions
// for penalty persistence.
package penaltyrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/penalty"
)

// PenaltyDTO represents the database structure for persisting penalties.
// Enum fields are stored as their string form so that read queries can
// bucket on them directly.
type PenaltyDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID        uuid.UUID  `gorm:"type:uuid;index"`
	OrderID         *uuid.UUID `gorm:"type:uuid"`
	Reason          string
	Amount          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Severity        string          `gorm:"type:varchar(10)"`
	Status          string          `gorm:"type:varchar(10);index"`
	CanAppeal       bool
	AppealStatus    string `gorm:"type:varchar(10)"`
	AppealReason    string
	ResolutionNotes string
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for penalty entities.
func (PenaltyDTO) TableName() string {
	return "penalties"
}

func fromDomain(aggregate *penalty.Penalty) PenaltyDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return PenaltyDTO{
		ID:              aggregate.ID().Bytes(),
		DriverID:        aggregate.DriverID().Bytes(),
		OrderID:         orderID,
		Reason:          aggregate.Reason(),
		Amount:          aggregate.Amount().Decimal(),
		Severity:        aggregate.Severity().String(),
		Status:          aggregate.Status().String(),
		CanAppeal:       aggregate.CanAppeal(),
		AppealStatus:    aggregate.AppealStatus().String(),
		AppealReason:    aggregate.AppealReason(),
		ResolutionNotes: aggregate.ResolutionNotes(),
		CreatedAt:       aggregate.IssuedAt(),
	}
}

func toDomain(dto PenaltyDTO) (*penalty.Penalty, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	severity, err := penalty.SeverityFromString(dto.Severity)
	if err != nil {
		return nil, err
	}

	status, err := penalty.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	appealStatus, err := penalty.AppealStatusFromString(dto.AppealStatus)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}

	return penalty.RestorePenalty(id, driverID, orderID, dto.Reason, amount,
		severity, status, dto.CanAppeal, appealStatus, dto.AppealReason,
		dto.ResolutionNotes, dto.CreatedAt)
}
