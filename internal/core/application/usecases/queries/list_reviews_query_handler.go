package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/kernel"
)

// ListReviewsQueryHandler lists a driver's reviews newest first and builds
// the rating summary.
type ListReviewsQueryHandler struct {
	db *gorm.DB
}

// NewListReviewsQueryHandler creates a handler for the reviews query.
func NewListReviewsQueryHandler(db *gorm.DB) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListReviewsQueryHandler) Handle(ctx context.Context, query ListReviewsQuery) (ListReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListReviewsResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			rating,
			comment,
			reviewer_name,
			created_at
		FROM driver_reviews
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return ListReviewsResponse{}, err
	}
	defer rows.Close()

	response := ListReviewsResponse{
		Reviews: make([]ReviewResponse, 0),
	}

	ratingSum := 0

	for rows.Next() {
		var (
			id           uuid.UUID
			orderID      uuid.NullUUID
			rating       int
			comment      sql.NullString
			reviewerName sql.NullString
			createdAt    time.Time
		)

		err = rows.Scan(&id, &orderID, &rating, &comment, &reviewerName, &createdAt)
		if err != nil {
			return ListReviewsResponse{}, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListReviewsResponse{}, idErr
		}

		var relatedOrderID *kernel.UUID
		if orderID.Valid {
			related, orderErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if orderErr != nil {
				return ListReviewsResponse{}, orderErr
			}
			relatedOrderID = &related
		}

		response.Reviews = append(response.Reviews, ReviewResponse{
			ID:           reviewID,
			OrderID:      relatedOrderID,
			Rating:       rating,
			Comment:      comment.String,
			ReviewerName: reviewerName.String,
			CreatedAt:    createdAt,
		})

		if rating >= 1 && rating <= 5 {
			response.Summary.Breakdown[rating-1]++
		}
		ratingSum += rating
	}

	if err = rows.Err(); err != nil {
		return ListReviewsResponse{}, err
	}

	response.Summary.Count = len(response.Reviews)
	response.Summary.Average = averageRating(ratingSum, response.Summary.Count)

	return response, nil
}

func averageRating(sum, count int) string {
	if count == 0 {
		return "0.0"
	}
	average := decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(count))).
		Round(1)
	return average.StringFixed(1)
}
