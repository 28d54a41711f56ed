package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/services"
)

// trackedDays is the size of the time tracking window.
const trackedDays = 7

// TrackTimeQueryHandler computes a driver's worked time over the last seven
// days from the raw session rows. Open sessions count up to now.
type TrackTimeQueryHandler struct {
	db         *gorm.DB
	aggregator services.SessionAggregator
}

// NewTrackTimeQueryHandler creates a handler for the time tracking query.
func NewTrackTimeQueryHandler(db *gorm.DB) TrackTimeQueryHandler {
	return TrackTimeQueryHandler{
		db:         db,
		aggregator: services.NewSessionAggregator(),
	}
}

// Handle executes the query.
func (h TrackTimeQueryHandler) Handle(ctx context.Context, query TrackTimeQuery) (TrackTimeResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackTimeResponse{}, err
	}

	now := query.Now()
	today := startOfDay(now)
	windowStart := today.AddDate(0, 0, -(trackedDays - 1))
	windowEnd := today.AddDate(0, 0, 1)

	sessions, err := h.fetchSessions(ctx, query, windowStart, windowEnd)
	if err != nil {
		return TrackTimeResponse{}, err
	}

	fullWindow, err := kernel.NewTimeRange(windowStart, windowEnd)
	if err != nil {
		return TrackTimeResponse{}, err
	}
	todayWindow, err := kernel.NewTimeRange(today, windowEnd)
	if err != nil {
		return TrackTimeResponse{}, err
	}

	totalMinutes, err := h.aggregator.ActiveMinutes(sessions, fullWindow, now)
	if err != nil {
		return TrackTimeResponse{}, err
	}
	todayMinutes, err := h.aggregator.ActiveMinutes(sessions, todayWindow, now)
	if err != nil {
		return TrackTimeResponse{}, err
	}

	response := TrackTimeResponse{
		TotalMinutes: totalMinutes,
		TodayMinutes: todayMinutes,
		Days:         make([]DayTimeResponse, 0, trackedDays),
	}
	for _, s := range sessions {
		if s.IsOpen() {
			response.OnShift = true
			break
		}
	}

	for day := windowStart; day.Before(windowEnd); day = day.AddDate(0, 0, 1) {
		dayWindow, rangeErr := kernel.NewTimeRange(day, day.AddDate(0, 0, 1))
		if rangeErr != nil {
			return TrackTimeResponse{}, rangeErr
		}
		minutes, aggErr := h.aggregator.ActiveMinutes(sessions, dayWindow, now)
		if aggErr != nil {
			return TrackTimeResponse{}, aggErr
		}
		response.Days = append(response.Days, DayTimeResponse{Day: day, Minutes: minutes})
	}

	return response, nil
}

func (h TrackTimeQueryHandler) fetchSessions(
	ctx context.Context, query TrackTimeQuery, from, to time.Time,
) ([]*driver.Session, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, driver_id, start_time, end_time
		FROM driver_sessions
		WHERE driver_id = ? AND start_time < ? AND (end_time IS NULL OR end_time >= ?)
		ORDER BY start_time
	`, query.DriverID().Bytes(), to, from).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*driver.Session, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			driverID  uuid.UUID
			startTime time.Time
			endTime   sql.NullTime
		)

		if err = rows.Scan(&id, &driverID, &startTime, &endTime); err != nil {
			return nil, err
		}

		session, restoreErr := restoreSessionRow(id, driverID, startTime, endTime)
		if restoreErr != nil {
			return nil, restoreErr
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func restoreSessionRow(id, driverID uuid.UUID, startTime time.Time, endTime sql.NullTime) (*driver.Session, error) {
	sessionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(driverID[:])
	if err != nil {
		return nil, err
	}

	var closedAt *time.Time
	if endTime.Valid {
		t := endTime.Time
		closedAt = &t
	}

	return driver.RestoreSession(sessionID, ownerID, startTime, closedAt)
}
