package queries

import (
	"context"

	"gorm.io/gorm"
)

// RecentActivityQueryHandler reads the driver's newest orders.
type RecentActivityQueryHandler struct {
	db *gorm.DB
}

// NewRecentActivityQueryHandler creates a handler for the home screen feed.
func NewRecentActivityQueryHandler(db *gorm.DB) RecentActivityQueryHandler {
	return RecentActivityQueryHandler{db: db}
}

// Handle executes the query.
func (h RecentActivityQueryHandler) Handle(ctx context.Context, query RecentActivityQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

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
		WHERE driver_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.DriverID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.Limit())
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
