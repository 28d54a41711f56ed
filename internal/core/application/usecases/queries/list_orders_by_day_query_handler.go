package queries

import (
	"context"

	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/order"
)

// ListOrdersByDayQueryHandler reads a driver's orders for one calendar day
// and buckets them active/completed/cancelled.
type ListOrdersByDayQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersByDayQueryHandler creates a handler for day listings.
func NewListOrdersByDayQueryHandler(db *gorm.DB) ListOrdersByDayQueryHandler {
	return ListOrdersByDayQueryHandler{db: db}
}

// Handle executes the query.
func (h ListOrdersByDayQueryHandler) Handle(ctx context.Context, query ListOrdersByDayQuery) (OrdersByDayResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersByDayResponse{}, err
	}

	from := query.Day()
	to := from.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE driver_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes(), from, to).Rows()
	if err != nil {
		return OrdersByDayResponse{}, err
	}
	defer rows.Close()

	response := OrdersByDayResponse{
		Active:    make([]OrderResponse, 0),
		Completed: make([]OrderResponse, 0),
		Cancelled: make([]OrderResponse, 0),
	}

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return OrdersByDayResponse{}, scanErr
		}

		switch orderResp.Status {
		case order.Delivered.String():
			response.Completed = append(response.Completed, orderResp)
		case order.Cancelled.String():
			response.Cancelled = append(response.Cancelled, orderResp)
		default:
			response.Active = append(response.Active, orderResp)
		}
	}

	if err = rows.Err(); err != nil {
		return OrdersByDayResponse{}, err
	}

	return response, nil
}
