package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/domain/services"
)

// earningStatuses is the status set that counts as earnings.
var earningStatuses = []order.Status{order.Delivered}

// EarningsRangeQueryHandler aggregates a driver's earnings over a custom
// range. Rows are rehydrated into domain orders so the exact decimal
// summation lives in one place, the earnings aggregator.
type EarningsRangeQueryHandler struct {
	db         *gorm.DB
	aggregator services.EarningsAggregator
}

// NewEarningsRangeQueryHandler creates a handler for custom-range earnings.
func NewEarningsRangeQueryHandler(db *gorm.DB) EarningsRangeQueryHandler {
	return EarningsRangeQueryHandler{
		db:         db,
		aggregator: services.NewEarningsAggregator(),
	}
}

// Handle executes the query.
func (h EarningsRangeQueryHandler) Handle(ctx context.Context, query EarningsRangeQuery) (EarningsRangeResponse, error) {
	if err := query.Validate(); err != nil {
		return EarningsRangeResponse{}, err
	}

	orders, err := fetchEarningOrders(ctx, h.db, query.DriverID(), query.From(), query.To())
	if err != nil {
		return EarningsRangeResponse{}, err
	}

	window, err := kernel.NewTimeRange(query.From(), query.To())
	if err != nil {
		return EarningsRangeResponse{}, err
	}

	report, err := h.aggregator.Earnings(orders, earningStatuses, window)
	if err != nil {
		return EarningsRangeResponse{}, err
	}

	response := EarningsRangeResponse{
		Period: EarningsPeriod{
			Total: report.Total.DisplayString(),
			Count: report.Count,
		},
		Orders: make([]OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, orderToResponse(o))
	}

	return response, nil
}

// EarningsSummaryQueryHandler aggregates the standard four windows with a
// single fetch: orders since the start of last month cover every window.
type EarningsSummaryQueryHandler struct {
	db         *gorm.DB
	aggregator services.EarningsAggregator
}

// NewEarningsSummaryQueryHandler creates a handler for the earnings summary.
func NewEarningsSummaryQueryHandler(db *gorm.DB) EarningsSummaryQueryHandler {
	return EarningsSummaryQueryHandler{
		db:         db,
		aggregator: services.NewEarningsAggregator(),
	}
}

// Handle executes the query.
func (h EarningsSummaryQueryHandler) Handle(ctx context.Context, query EarningsSummaryQuery) (EarningsSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return EarningsSummaryResponse{}, err
	}

	now := query.Now()
	today := startOfDay(now)
	week := startOfWeek(now)
	month := startOfMonth(now)
	lastMonth := month.AddDate(0, -1, 0)
	end := today.AddDate(0, 0, 1)

	orders, err := fetchEarningOrders(ctx, h.db, query.DriverID(), lastMonth, end)
	if err != nil {
		return EarningsSummaryResponse{}, err
	}

	var response EarningsSummaryResponse
	for _, window := range []struct {
		period   *EarningsPeriod
		from, to time.Time
	}{
		{&response.Today, today, end},
		{&response.ThisWeek, week, end},
		{&response.ThisMonth, month, end},
		{&response.LastMonth, lastMonth, month},
	} {
		timeRange, rangeErr := kernel.NewTimeRange(window.from, window.to)
		if rangeErr != nil {
			return EarningsSummaryResponse{}, rangeErr
		}

		report, aggErr := h.aggregator.Earnings(orders, earningStatuses, timeRange)
		if aggErr != nil {
			return EarningsSummaryResponse{}, aggErr
		}
		window.period.Total = report.Total.DisplayString()
		window.period.Count = report.Count
	}

	return response, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the most recent Monday midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// fetchEarningOrders reads the driver's delivered orders created within
// [from, to) and rehydrates them into domain aggregates, keeping amounts
// exact for the aggregator.
func fetchEarningOrders(ctx context.Context, db *gorm.DB, driverID kernel.UUID, from, to time.Time) ([]*order.Order, error) {
	rows, err := db.WithContext(ctx).Raw(`
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
		WHERE driver_id = ? AND status = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
	`, driverID.Bytes(), order.Delivered.String(), from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
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

		err = rows.Scan(
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
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		amount, amountErr := kernel.NewMoneyFromDecimal(totalAmount)
		if amountErr != nil {
			return nil, amountErr
		}

		var completed *time.Time
		if completionTime.Valid {
			t := completionTime.Time
			completed = &t
		}

		aggregate, restoreErr := order.RestoreOrder(orderID, driverID, orderStatus, amount,
			paymentMethod, paymentStatus, createdAt, completed,
			start, destination, deliveryNotes, remark, photoProof)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func orderToResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID(),
		Status:         o.Status().String(),
		TotalAmount:    o.TotalAmount().DisplayString(),
		PaymentMethod:  o.PaymentMethod(),
		PaymentStatus:  o.PaymentStatus(),
		CreatedAt:      o.CreatedAt(),
		CompletionTime: o.CompletionTime(),
		Start:          o.Start(),
		Destination:    o.Destination(),
		DeliveryNotes:  o.DeliveryNotes(),
		Remark:         o.Remark(),
		PhotoProof:     o.PhotoProof(),
	}
}
