package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order's details from the database.
// Scoping is part of the query itself: an order owned by another driver
// yields ObjectNotFoundError, indistinguishable from a missing order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			total_amount,
			payment_method,
			payment_status,
			created_at,
			completion_time,
			start_address,
			destination_address,
			delivery_notes,
			remark,
			photo_proof
		FROM orders
		WHERE id = ? AND driver_id = ?
	`, query.OrderID().Bytes(), query.DriverID().Bytes()).Row()

	response, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderResponse{}, err
	}

	return response, nil
}

func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id             uuid.UUID
		status         string
		totalAmount    decimal.Decimal
		paymentMethod  string
		paymentStatus  string
		createdAt      time.Time
		completionTime sql.NullTime
		start          string
		destination    string
		deliveryNotes  string
		remark         string
		photoProof     string
	)

	err := scan(
		&id,
		&status,
		&totalAmount,
		&paymentMethod,
		&paymentStatus,
		&createdAt,
		&completionTime,
		&start,
		&destination,
		&deliveryNotes,
		&remark,
		&photoProof,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	response := OrderResponse{
		ID:            orderID,
		Status:        status,
		TotalAmount:   totalAmount.Truncate(2).StringFixed(2),
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,
		CreatedAt:     createdAt,
		Start:         start,
		Destination:   destination,
		DeliveryNotes: deliveryNotes,
		Remark:        remark,
		PhotoProof:    photoProof,
	}
	if completionTime.Valid {
		completed := completionTime.Time
		response.CompletionTime = &completed
	}

	return response, nil
}
