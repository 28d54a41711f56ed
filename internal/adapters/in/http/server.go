// Package http exposes the driver-facing REST API. Handlers translate HTTP
// requests into commands and queries and map domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/domain/model/penalty"
	"driverhub/internal/pkg/errs"
)

// authHeader carries the external auth identity on every request.
const authHeader = "X-Auth-Id"

// driverIDContextKey stores the resolved driver ID in the echo context.
const driverIDContextKey = "driverID"

const dateLayout = "2006-01-02"

// Server implements the HTTP handlers for the driver API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerDriverHandler       commands.RegisterDriverCommandHandler
	updateProfileHandler        commands.UpdateDriverProfileCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	startShiftHandler           commands.StartShiftCommandHandler
	endShiftHandler             commands.EndShiftCommandHandler
	submitAppealHandler         commands.SubmitPenaltyAppealCommandHandler
	markNotificationHandler     commands.MarkNotificationReadCommandHandler
	markAllNotificationsHandler commands.MarkAllNotificationsReadCommandHandler

	// Query handlers
	getProfileHandler        queries.GetDriverProfileQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersByDayHandler   queries.ListOrdersByDayQueryHandler
	recentActivityHandler    queries.RecentActivityQueryHandler
	earningsSummaryHandler   queries.EarningsSummaryQueryHandler
	earningsRangeHandler     queries.EarningsRangeQueryHandler
	trackTimeHandler         queries.TrackTimeQueryHandler
	listPenaltiesHandler     queries.ListPenaltiesQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
	listReviewsHandler       queries.ListReviewsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerDriverHandler commands.RegisterDriverCommandHandler,
	updateProfileHandler commands.UpdateDriverProfileCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	startShiftHandler commands.StartShiftCommandHandler,
	endShiftHandler commands.EndShiftCommandHandler,
	submitAppealHandler commands.SubmitPenaltyAppealCommandHandler,
	markNotificationHandler commands.MarkNotificationReadCommandHandler,
	markAllNotificationsHandler commands.MarkAllNotificationsReadCommandHandler,
	getProfileHandler queries.GetDriverProfileQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersByDayHandler queries.ListOrdersByDayQueryHandler,
	recentActivityHandler queries.RecentActivityQueryHandler,
	earningsSummaryHandler queries.EarningsSummaryQueryHandler,
	earningsRangeHandler queries.EarningsRangeQueryHandler,
	trackTimeHandler queries.TrackTimeQueryHandler,
	listPenaltiesHandler queries.ListPenaltiesQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
	listReviewsHandler queries.ListReviewsQueryHandler,
) *Server {
	return &Server{
		registerDriverHandler:       registerDriverHandler,
		updateProfileHandler:        updateProfileHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		startShiftHandler:           startShiftHandler,
		endShiftHandler:             endShiftHandler,
		submitAppealHandler:         submitAppealHandler,
		markNotificationHandler:     markNotificationHandler,
		markAllNotificationsHandler: markAllNotificationsHandler,
		getProfileHandler:           getProfileHandler,
		getOrderHandler:             getOrderHandler,
		listOrdersByDayHandler:      listOrdersByDayHandler,
		recentActivityHandler:       recentActivityHandler,
		earningsSummaryHandler:      earningsSummaryHandler,
		earningsRangeHandler:        earningsRangeHandler,
		trackTimeHandler:            trackTimeHandler,
		listPenaltiesHandler:        listPenaltiesHandler,
		listNotificationsHandler:    listNotificationsHandler,
		listReviewsHandler:          listReviewsHandler,
	}
}

// RegisterRoutes mounts the API on the echo instance. Registration and the
// health probe skip the auth middleware; everything else requires a known
// driver identity.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/drivers", s.RegisterDriver)

	authed := api.Group("", s.authMiddleware)
	authed.GET("/drivers/me", s.GetProfile)
	authed.PATCH("/drivers/me", s.UpdateProfile)

	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/recent", s.RecentActivity)
	authed.GET("/orders/:id", s.GetOrder)
	authed.POST("/orders/:id/status", s.UpdateOrderStatus)

	authed.GET("/earnings", s.EarningsRange)
	authed.GET("/earnings/summary", s.EarningsSummary)

	authed.POST("/shifts/start", s.StartShift)
	authed.POST("/shifts/stop", s.StopShift)
	authed.GET("/shifts/time", s.TrackTime)

	authed.GET("/penalties", s.ListPenalties)
	authed.POST("/penalties/:id/appeal", s.SubmitAppeal)

	authed.GET("/reviews", s.ListReviews)

	authed.GET("/notifications", s.ListNotifications)
	authed.POST("/notifications/:id/read", s.MarkNotificationRead)
	authed.POST("/notifications/read-all", s.MarkAllNotificationsRead)
}

// authMiddleware resolves the X-Auth-Id header to a registered driver and
// stores the driver ID in the request context. Requests with a missing or
// unknown identity are rejected with 401.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		authID := ctx.Request().Header.Get(authHeader)
		if authID == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing " + authHeader + " header",
			})
		}

		query, err := queries.NewGetDriverProfileQuery(authID)
		if err != nil {
			return s.errorResponse(ctx, err)
		}

		profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Unknown driver identity",
				})
			}
			return s.errorResponse(ctx, err)
		}

		ctx.Set(driverIDContextKey, profile.ID)
		return next(ctx)
	}
}

func (s *Server) driverID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(driverIDContextKey).(kernel.UUID)
	return id
}

// errorResponse maps domain errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrDriverAlreadyRegistered),
		errors.Is(err, commands.ErrShiftAlreadyOpen),
		errors.Is(err, penalty.ErrAppealNotAllowed),
		errors.Is(err, driver.ErrSessionAlreadyClosed),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrMissingRequiredData):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUpstreamFailure):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// RegisterDriver handles POST /api/v1/drivers - registers the authenticated
// identity as a new driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	authID := ctx.Request().Header.Get(authHeader)
	if authID == "" {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing " + authHeader + " header",
		})
	}

	var body RegisterDriverRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRegisterDriverCommand(authID, body.FullName, body.Phone,
		body.VehicleNumber, body.VehicleType)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetProfile handles GET /api/v1/drivers/me.
func (s *Server) GetProfile(ctx echo.Context) error {
	authID := ctx.Request().Header.Get(authHeader)

	query, err := queries.NewGetDriverProfileQuery(authID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	profile, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfile(profile))
}

// UpdateProfile handles PATCH /api/v1/drivers/me.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var body UpdateProfileRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateDriverProfileCommand(s.driverID(ctx),
		body.FullName, body.Phone, body.VehicleNumber, body.VehicleType, body.Photo)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - dispatches a new order to the
// authenticated driver.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body CreateOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	amount, err := kernel.NewMoneyFromString(body.TotalAmount)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), s.driverID(ctx),
		amount, body.PaymentMethod, body.Start, body.Destination, body.DeliveryNotes)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListOrders handles GET /api/v1/orders?date=YYYY-MM-DD - lists the day's
// orders grouped by bucket. The date defaults to today.
func (s *Server) ListOrders(ctx echo.Context) error {
	day := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid date, expected YYYY-MM-DD",
			})
		}
		day = parsed
	}

	query, err := queries.NewListOrdersByDayQuery(s.driverID(ctx), day)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.listOrdersByDayHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrdersByDay{
		Active:    toOrders(result.Active),
		Completed: toOrders(result.Completed),
		Cancelled: toOrders(result.Cancelled),
	})
}

// RecentActivity handles GET /api/v1/orders/recent?limit=N.
func (s *Server) RecentActivity(ctx echo.Context) error {
	limit := 10
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
		}
		limit = parsed
	}

	query, err := queries.NewRecentActivityQuery(s.driverID(ctx), limit)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.recentActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(result))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(result))
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body UpdateOrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, s.driverID(ctx), target,
		body.DeliveryMethod, body.PhotoProof, body.CancelReason)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EarningsSummary handles GET /api/v1/earnings/summary.
func (s *Server) EarningsSummary(ctx echo.Context) error {
	query, err := queries.NewEarningsSummaryQuery(s.driverID(ctx), time.Now().UTC())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.earningsSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EarningsSummary{
		Today:     EarningsPeriod(result.Today),
		ThisWeek:  EarningsPeriod(result.ThisWeek),
		ThisMonth: EarningsPeriod(result.ThisMonth),
		LastMonth: EarningsPeriod(result.LastMonth),
	})
}

// EarningsRange handles GET /api/v1/earnings?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Both days are inclusive.
func (s *Server) EarningsRange(ctx echo.Context) error {
	from, err := time.Parse(dateLayout, ctx.QueryParam("from"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid from date, expected YYYY-MM-DD",
		})
	}

	to, err := time.Parse(dateLayout, ctx.QueryParam("to"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid to date, expected YYYY-MM-DD",
		})
	}

	query, err := queries.NewEarningsRangeQuery(s.driverID(ctx), from, to.AddDate(0, 0, 1))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.earningsRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EarningsRange{
		Period: EarningsPeriod(result.Period),
		Orders: toOrders(result.Orders),
	})
}

// StartShift handles POST /api/v1/shifts/start.
func (s *Server) StartShift(ctx echo.Context) error {
	cmd, err := commands.NewStartShiftCommand(s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.startShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// StopShift handles POST /api/v1/shifts/stop.
func (s *Server) StopShift(ctx echo.Context) error {
	cmd, err := commands.NewEndShiftCommand(s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.endShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackTime handles GET /api/v1/shifts/time.
func (s *Server) TrackTime(ctx echo.Context) error {
	query, err := queries.NewTrackTimeQuery(s.driverID(ctx), time.Now().UTC())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.trackTimeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := TrackTime{
		TotalMinutes: result.TotalMinutes,
		TodayMinutes: result.TodayMinutes,
		OnShift:      result.OnShift,
		Days:         make([]DayTime, len(result.Days)),
	}
	for i, day := range result.Days {
		response.Days[i] = DayTime{
			Day:     day.Day.Format(dateLayout),
			Minutes: day.Minutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListPenalties handles GET /api/v1/penalties.
func (s *Server) ListPenalties(ctx echo.Context) error {
	query, err := queries.NewListPenaltiesQuery(s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.listPenaltiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PenaltyList{
		Active:   toPenalties(result.Active),
		Resolved: toPenalties(result.Resolved),
	})
}

// SubmitAppeal handles POST /api/v1/penalties/:id/appeal.
func (s *Server) SubmitAppeal(ctx echo.Context) error {
	penaltyID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var body SubmitAppealRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitPenaltyAppealCommand(penaltyID, s.driverID(ctx), body.Reason)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.submitAppealHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListReviews handles GET /api/v1/reviews.
func (s *Server) ListReviews(ctx echo.Context) error {
	query, err := queries.NewListReviewsQuery(s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.listReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReviewList{
		Reviews: toReviews(result.Reviews),
		Summary: RatingSummary{
			Average:   result.Summary.Average,
			Count:     result.Summary.Count,
			Breakdown: result.Summary.Breakdown,
		},
	})
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	query, err := queries.NewListNotificationsQuery(s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := NotificationList{
		Notifications: make([]Notification, len(result.Notifications)),
		UnreadCount:   result.UnreadCount,
	}
	for i, n := range result.Notifications {
		response.Notifications[i] = Notification{
			ID:        n.ID.String(),
			Kind:      n.Kind,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.markNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand(s.driverID(ctx))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.markAllNotificationsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
