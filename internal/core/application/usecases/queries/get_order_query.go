// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and map rows into response
// structs; aggregation that carries business meaning is delegated to the
// domain services.
package queries

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves full details of one order, scoped to the driver.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, driverID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	details, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
func NewGetOrderQuery(orderID, driverID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setDriverID(driverID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// DriverID returns the requesting driver.
func (q GetOrderQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID             kernel.UUID
	Status         string
	TotalAmount    string
	PaymentMethod  string
	PaymentStatus  string
	CreatedAt      time.Time
	CompletionTime *time.Time
	Start          string
	Destination    string
	DeliveryNotes  string
	Remark         string
	PhotoProof     string
}
