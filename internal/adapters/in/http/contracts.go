package http

import (
	"time"

	"driverhub/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterDriverRequest is the request body for driver registration.
type RegisterDriverRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
}

// UpdateProfileRequest is the request body for profile updates. An empty
// photo keeps the current one.
type UpdateProfileRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	Photo         string `json:"photo"`
}

// CreateOrderRequest is the request body for dispatching a new order to the
// authenticated driver.
type CreateOrderRequest struct {
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	Start         string `json:"start"`
	Destination   string `json:"destination"`
	DeliveryNotes string `json:"delivery_notes"`
}

// UpdateOrderStatusRequest is the request body for order status transitions.
// DeliveryMethod and PhotoProof are required when the target status is
// delivered; CancelReason applies to cancellations.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status"`
	DeliveryMethod string `json:"delivery_method"`
	PhotoProof     string `json:"photo_proof"`
	CancelReason   string `json:"cancel_reason"`
}

// SubmitAppealRequest is the request body for penalty appeals.
type SubmitAppealRequest struct {
	Reason string `json:"reason"`
}

// DriverProfile is the profile representation returned to the app.
type DriverProfile struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	Photo         string `json:"photo,omitempty"`
	IsActive      bool   `json:"is_active"`
}

// Order is the order representation returned to the app.
type Order struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	TotalAmount    string     `json:"total_amount"`
	PaymentMethod  string     `json:"payment_method"`
	PaymentStatus  string     `json:"payment_status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`
	Start          string     `json:"start"`
	Destination    string     `json:"destination"`
	DeliveryNotes  string     `json:"delivery_notes,omitempty"`
	Remark         string     `json:"remark,omitempty"`
	PhotoProof     string     `json:"photo_proof,omitempty"`
}

// OrdersByDay groups a day's orders by their lifecycle bucket.
type OrdersByDay struct {
	Active    []Order `json:"active"`
	Completed []Order `json:"completed"`
	Cancelled []Order `json:"cancelled"`
}

// EarningsPeriod is one aggregated earnings window.
type EarningsPeriod struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}

// EarningsSummary is the standard four-window earnings breakdown.
type EarningsSummary struct {
	Today     EarningsPeriod `json:"today"`
	ThisWeek  EarningsPeriod `json:"this_week"`
	ThisMonth EarningsPeriod `json:"this_month"`
	LastMonth EarningsPeriod `json:"last_month"`
}

// EarningsRange is a custom-range earnings report with contributing orders.
type EarningsRange struct {
	Period EarningsPeriod `json:"period"`
	Orders []Order        `json:"orders"`
}

// DayTime is one day's worked minutes.
type DayTime struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

// TrackTime is the seven-day working time report.
type TrackTime struct {
	TotalMinutes int       `json:"total_minutes"`
	TodayMinutes int       `json:"today_minutes"`
	OnShift      bool      `json:"on_shift"`
	Days         []DayTime `json:"days"`
}

// Penalty is the penalty representation returned to the app.
type Penalty struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id,omitempty"`
	Reason          string    `json:"reason"`
	Amount          string    `json:"amount"`
	Severity        string    `json:"severity"`
	Status          string    `json:"status"`
	CanAppeal       bool      `json:"can_appeal"`
	AppealStatus    string    `json:"appeal_status"`
	AppealReason    string    `json:"appeal_reason,omitempty"`
	ResolutionNotes string    `json:"resolution_notes,omitempty"`
	IssuedAt        time.Time `json:"issued_at"`
}

// PenaltyList groups penalties into active and resolved buckets.
type PenaltyList struct {
	Active   []Penalty `json:"active"`
	Resolved []Penalty `json:"resolved"`
}

// Notification is the notification representation returned to the app.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationList lists notifications together with the unread count.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// Review is the customer review representation returned to the app.
type Review struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RatingSummary aggregates the driver's ratings. Breakdown counts reviews
// per star, index 0 holding one-star reviews.
type RatingSummary struct {
	Average   string `json:"average"`
	Count     int    `json:"count"`
	Breakdown [5]int `json:"breakdown"`
}

// ReviewList lists reviews newest first together with the rating summary.
type ReviewList struct {
	Reviews []Review      `json:"reviews"`
	Summary RatingSummary `json:"summary"`
}

func toOrder(r queries.OrderResponse) Order {
	return Order{
		ID:             r.ID.String(),
		Status:         r.Status,
		TotalAmount:    r.TotalAmount,
		PaymentMethod:  r.PaymentMethod,
		PaymentStatus:  r.PaymentStatus,
		CreatedAt:      r.CreatedAt,
		CompletionTime: r.CompletionTime,
		Start:          r.Start,
		Destination:    r.Destination,
		DeliveryNotes:  r.DeliveryNotes,
		Remark:         r.Remark,
		PhotoProof:     r.PhotoProof,
	}
}

func toOrders(rs []queries.OrderResponse) []Order {
	orders := make([]Order, len(rs))
	for i, r := range rs {
		orders[i] = toOrder(r)
	}
	return orders
}

func toPenalties(rs []queries.PenaltyResponse) []Penalty {
	penalties := make([]Penalty, len(rs))
	for i, r := range rs {
		penalties[i] = Penalty{
			ID:              r.ID.String(),
			Reason:          r.Reason,
			Amount:          r.Amount,
			Severity:        r.Severity,
			Status:          r.Status,
			CanAppeal:       r.CanAppeal,
			AppealStatus:    r.AppealStatus,
			AppealReason:    r.AppealReason,
			ResolutionNotes: r.ResolutionNotes,
			IssuedAt:        r.IssuedAt,
		}
		if r.OrderID != nil {
			penalties[i].OrderID = r.OrderID.String()
		}
	}
	return penalties
}

func toReviews(rs []queries.ReviewResponse) []Review {
	reviews := make([]Review, len(rs))
	for i, r := range rs {
		reviews[i] = Review{
			ID:           r.ID.String(),
			Rating:       r.Rating,
			Comment:      r.Comment,
			ReviewerName: r.ReviewerName,
			CreatedAt:    r.CreatedAt,
		}
		if r.OrderID != nil {
			reviews[i].OrderID = r.OrderID.String()
		}
	}
	return reviews
}

func toProfile(r queries.DriverProfileResponse) DriverProfile {
	return DriverProfile{
		ID:            r.ID.String(),
		FullName:      r.FullName,
		Phone:         r.Phone,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   r.VehicleType,
		Photo:         r.Photo,
		IsActive:      r.IsActive,
	}
}
