package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/penalty"
)

// ListPenaltiesQueryHandler lists a driver's penalties, pending ones first.
type ListPenaltiesQueryHandler struct {
	db *gorm.DB
}

// NewListPenaltiesQueryHandler creates a handler for the penalties query.
func NewListPenaltiesQueryHandler(db *gorm.DB) ListPenaltiesQueryHandler {
	return ListPenaltiesQueryHandler{db: db}
}

// Handle executes the query.
func (h ListPenaltiesQueryHandler) Handle(ctx context.Context, query ListPenaltiesQuery) (ListPenaltiesResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPenaltiesResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			reason,
			amount,
			severity,
			status,
			can_appeal,
			appeal_status,
			appeal_reason,
			resolution_notes,
			created_at
		FROM penalties
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return ListPenaltiesResponse{}, err
	}
	defer rows.Close()

	response := ListPenaltiesResponse{
		Active:   make([]PenaltyResponse, 0),
		Resolved: make([]PenaltyResponse, 0),
	}

	for rows.Next() {
		var (
			id              uuid.UUID
			orderID         uuid.NullUUID
			reason          string
			amount          decimal.Decimal
			severity        string
			status          string
			canAppeal       bool
			appealStatus    string
			appealReason    sql.NullString
			resolutionNotes sql.NullString
			createdAt       time.Time
		)

		err = rows.Scan(
			&id,
			&orderID,
			&reason,
			&amount,
			&severity,
			&status,
			&canAppeal,
			&appealStatus,
			&appealReason,
			&resolutionNotes,
			&createdAt,
		)
		if err != nil {
			return ListPenaltiesResponse{}, err
		}

		penaltyID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListPenaltiesResponse{}, idErr
		}

		var relatedOrderID *kernel.UUID
		if orderID.Valid {
			related, orderErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if orderErr != nil {
				return ListPenaltiesResponse{}, orderErr
			}
			relatedOrderID = &related
		}

		item := PenaltyResponse{
			ID:              penaltyID,
			OrderID:         relatedOrderID,
			Reason:          reason,
			Amount:          amount.Truncate(2).StringFixed(2),
			Severity:        severity,
			Status:          status,
			CanAppeal:       canAppeal,
			AppealStatus:    appealStatus,
			AppealReason:    appealReason.String,
			ResolutionNotes: resolutionNotes.String,
			IssuedAt:        createdAt,
		}

		if status == penalty.StatusPending.String() {
			response.Active = append(response.Active, item)
		} else {
			response.Resolved = append(response.Resolved, item)
		}
	}

	if err = rows.Err(); err != nil {
		return ListPenaltiesResponse{}, err
	}

	return response, nil
}
