// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its string form so that read queries can filter on
// it without knowing the enum encoding, and the amount is stored as numeric
// to keep money exact.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID           uuid.UUID       `gorm:"type:uuid;index"`
	Status             string          `gorm:"type:varchar(20);index"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod      string          `gorm:"type:varchar(20)"`
	PaymentStatus      string          `gorm:"type:varchar(20)"`
	CreatedAt          time.Time       `gorm:"index"`
	CompletionTime     *time.Time
	StartAddress       string
	DestinationAddress string
	DeliveryNotes      string
	Remark             string
	PhotoProof         string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		DriverID:           aggregate.DriverID().Bytes(),
		Status:             aggregate.Status().String(),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		PaymentMethod:      aggregate.PaymentMethod(),
		PaymentStatus:      aggregate.PaymentStatus(),
		CreatedAt:          aggregate.CreatedAt(),
		CompletionTime:     aggregate.CompletionTime(),
		StartAddress:       aggregate.Start(),
		DestinationAddress: aggregate.Destination(),
		DeliveryNotes:      aggregate.DeliveryNotes(),
		Remark:             aggregate.Remark(),
		PhotoProof:         aggregate.PhotoProof(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, driverID, status, amount,
		dto.PaymentMethod, dto.PaymentStatus, dto.CreatedAt, dto.CompletionTime,
		dto.StartAddress, dto.DestinationAddress, dto.DeliveryNotes, dto.Remark, dto.PhotoProof)
}
