package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"driverhub/internal/adapters/out/postgres/driverrepo"
	"driverhub/internal/adapters/out/postgres/notificationrepo"
	"driverhub/internal/adapters/out/postgres/orderrepo"
	"driverhub/internal/adapters/out/postgres/penaltyrepo"
	"driverhub/internal/adapters/out/postgres/reviewrepo"
	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/core/domain/model/notification"
	"driverhub/internal/core/domain/model/order"
	"driverhub/internal/core/domain/model/penalty"
	"driverhub/internal/pkg/errs"
)

// mockAggregateTracker is a no-op tracker for seeding data through repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL database seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	orderRepo        *orderrepo.GormOrderRepository
	driverRepo       *driverrepo.GormDriverRepository
	sessionRepo      *driverrepo.GormSessionRepository
	penaltyRepo      *penaltyrepo.GormPenaltyRepository
	notificationRepo *notificationrepo.GormNotificationRepository
	driverID         kernel.UUID
	authID           string
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&driverrepo.SessionDTO{},
		&penaltyrepo.PenaltyDTO{},
		&notificationrepo.NotificationDTO{},
		&reviewrepo.ReviewDTO{},
	)
	suite.Require().NoError(err)

	tracker := &mockAggregateTracker{}
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, tracker)
	suite.driverRepo = driverrepo.NewGormDriverRepository(db, tracker)
	suite.sessionRepo = driverrepo.NewGormSessionRepository(db, tracker)
	suite.penaltyRepo = penaltyrepo.NewGormPenaltyRepository(db, tracker)
	suite.notificationRepo = notificationrepo.NewGormNotificationRepository(db, tracker)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, drivers, driver_sessions, penalties, notifications, driver_reviews").Error
	suite.Require().NoError(err)

	suite.driverID = kernel.NewUUID()
	suite.authID = kernel.NewUUID().String()

	d, err := driver.NewDriver(suite.driverID, suite.authID,
		"Ravi Kumar", "+911234567890", "KA01AB1234", "bike")
	suite.Require().NoError(err)
	err = suite.driverRepo.Add(context.Background(), d)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(amount string, createdAt time.Time) *order.Order {
	money, err := kernel.NewMoneyFromString(amount)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.driverID, money, "cash",
		"Main Warehouse", "12 Park Street", "", createdAt)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *QueryHandlersIntegrationTestSuite) deliver(o *order.Order, at time.Time) {
	for _, target := range []order.Status{order.Accepted, order.OnWay, order.Reached} {
		previous := o.Status()
		suite.Require().NoError(o.Advance(target))
		suite.Require().NoError(suite.orderRepo.UpdateStatus(context.Background(), o, previous))
	}

	previous := o.Status()
	suite.Require().NoError(o.Deliver("cash", "proof.jpg", at))
	suite.Require().NoError(suite.orderRepo.UpdateStatus(context.Background(), o, previous))
}

func (suite *QueryHandlersIntegrationTestSuite) cancel(o *order.Order) {
	previous := o.Status()
	suite.Require().NoError(o.Cancel("customer unavailable"))
	suite.Require().NoError(suite.orderRepo.UpdateStatus(context.Background(), o, previous))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderQueryHandler_ReturnsDetails() {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	o := suite.seedOrder("249.75", createdAt)

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(o.ID(), suite.driverID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(o.ID(), result.ID)
	suite.Equal("confirmed", result.Status)
	suite.Equal("249.75", result.TotalAmount)
	suite.Equal("cash", result.PaymentMethod)
	suite.Equal("Main Warehouse", result.Start)
	suite.Equal("12 Park Street", result.Destination)
	suite.Nil(result.CompletionTime)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderQueryHandler_OtherDriversOrderIsNotFound() {
	ctx := context.Background()
	o := suite.seedOrder("100.00", time.Now().UTC().Truncate(time.Second))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(o.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListOrdersByDayQueryHandler_Buckets() {
	ctx := context.Background()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	active := suite.seedOrder("50.00", day.Add(9*time.Hour))
	delivered := suite.seedOrder("60.00", day.Add(12*time.Hour))
	suite.deliver(delivered, day.Add(13*time.Hour))
	cancelled := suite.seedOrder("70.00", day.Add(15*time.Hour))
	suite.cancel(cancelled)
	suite.seedOrder("80.00", day.Add(25*time.Hour)) // next day, excluded

	handler := queries.NewListOrdersByDayQueryHandler(suite.db)
	query, err := queries.NewListOrdersByDayQuery(suite.driverID, day)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Active, 1)
	suite.Require().Len(result.Completed, 1)
	suite.Require().Len(result.Cancelled, 1)
	suite.Equal(active.ID(), result.Active[0].ID)
	suite.Equal(delivered.ID(), result.Completed[0].ID)
	suite.Equal(cancelled.ID(), result.Cancelled[0].ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestRecentActivityQueryHandler_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	for i := range 5 {
		suite.seedOrder("10.00", base.Add(time.Duration(i)*time.Minute))
	}

	handler := queries.NewRecentActivityQueryHandler(suite.db)
	query, err := queries.NewRecentActivityQuery(suite.driverID, 3)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(base.Add(4*time.Minute), result[0].CreatedAt.UTC())
	suite.Equal(base.Add(2*time.Minute), result[2].CreatedAt.UTC())
}

func (suite *QueryHandlersIntegrationTestSuite) TestEarningsSummaryQueryHandler_Windows() {
	ctx := context.Background()
	// A Friday, so the week starts on Monday the 10th.
	now := time.Date(2025, 3, 14, 17, 0, 0, 0, time.UTC)

	today := suite.seedOrder("100.10", now.Add(-2*time.Hour))
	suite.deliver(today, now.Add(-time.Hour))

	thisWeek := suite.seedOrder("50.00", time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC))
	suite.deliver(thisWeek, time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC))

	thisMonth := suite.seedOrder("25.25", time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC))
	suite.deliver(thisMonth, time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC))

	lastMonth := suite.seedOrder("200.00", time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC))
	suite.deliver(lastMonth, time.Date(2025, 2, 15, 11, 0, 0, 0, time.UTC))

	// Cancelled orders never count.
	cancelled := suite.seedOrder("999.00", now.Add(-3*time.Hour))
	suite.cancel(cancelled)

	handler := queries.NewEarningsSummaryQueryHandler(suite.db)
	query, err := queries.NewEarningsSummaryQuery(suite.driverID, now)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("100.10", result.Today.Total)
	suite.Equal(1, result.Today.Count)
	suite.Equal("150.10", result.ThisWeek.Total)
	suite.Equal(2, result.ThisWeek.Count)
	suite.Equal("175.35", result.ThisMonth.Total)
	suite.Equal(3, result.ThisMonth.Count)
	suite.Equal("200.00", result.LastMonth.Total)
	suite.Equal(1, result.LastMonth.Count)
}

func (suite *QueryHandlersIntegrationTestSuite) TestEarningsRangeQueryHandler_ExactSum() {
	ctx := context.Background()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	// Ten dimes must sum to exactly one unit.
	for i := range 10 {
		o := suite.seedOrder("0.10", day.Add(time.Duration(i)*time.Hour))
		suite.deliver(o, day.Add(time.Duration(i)*time.Hour+30*time.Minute))
	}

	handler := queries.NewEarningsRangeQueryHandler(suite.db)
	query, err := queries.NewEarningsRangeQuery(suite.driverID, day, day.Add(24*time.Hour))
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("1.00", result.Period.Total)
	suite.Equal(10, result.Period.Count)
	suite.Len(result.Orders, 10)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackTimeQueryHandler_SumsSessions() {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

	// Closed session yesterday: 90 minutes.
	yesterday := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	closed, err := driver.NewSession(kernel.NewUUID(), suite.driverID, yesterday)
	suite.Require().NoError(err)
	suite.Require().NoError(closed.Close(yesterday.Add(90 * time.Minute)))
	suite.Require().NoError(suite.sessionRepo.Add(ctx, closed))

	// Open session today started 45 minutes ago.
	open, err := driver.NewSession(kernel.NewUUID(), suite.driverID, now.Add(-45*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.sessionRepo.Add(ctx, open))

	// Session outside the window is ignored.
	old := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	outside, err := driver.NewSession(kernel.NewUUID(), suite.driverID, old)
	suite.Require().NoError(err)
	suite.Require().NoError(outside.Close(old.Add(8 * time.Hour)))
	suite.Require().NoError(suite.sessionRepo.Add(ctx, outside))

	handler := queries.NewTrackTimeQueryHandler(suite.db)
	query, err := queries.NewTrackTimeQuery(suite.driverID, now)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(135, result.TotalMinutes)
	suite.Equal(45, result.TodayMinutes)
	suite.True(result.OnShift)
	suite.Require().Len(result.Days, 7)
	suite.Equal(time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), result.Days[0].Day)
	suite.Equal(90, result.Days[5].Minutes)
	suite.Equal(45, result.Days[6].Minutes)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListPenaltiesQueryHandler_Buckets() {
	ctx := context.Background()
	issuedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	amount, err := kernel.NewMoneyFromString("50.00")
	suite.Require().NoError(err)

	pending, err := penalty.NewPenalty(kernel.NewUUID(), suite.driverID, nil,
		"Late delivery", amount, penalty.SeverityLow, true, issuedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.penaltyRepo.Add(ctx, pending))

	processed, err := penalty.RestorePenalty(kernel.NewUUID(), suite.driverID, nil,
		"Damaged package", amount, penalty.SeverityHigh, penalty.StatusProcessed,
		false, penalty.AppealStatusNone, "", "Deducted from payout", issuedAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.penaltyRepo.Add(ctx, processed))

	handler := queries.NewListPenaltiesQueryHandler(suite.db)
	query, err := queries.NewListPenaltiesQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Active, 1)
	suite.Require().Len(result.Resolved, 1)
	suite.Equal(pending.ID(), result.Active[0].ID)
	suite.Equal("50.00", result.Active[0].Amount)
	suite.True(result.Active[0].CanAppeal)
	suite.Equal(processed.ID(), result.Resolved[0].ID)
	suite.Equal("Deducted from payout", result.Resolved[0].ResolutionNotes)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListNotificationsQueryHandler_UnreadCount() {
	ctx := context.Background()
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	first, err := notification.NewNotification(kernel.NewUUID(), suite.driverID,
		notification.KindOrder, "New order", "Order assigned to you", base)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.notificationRepo.Add(ctx, first))

	second, err := notification.NewNotification(kernel.NewUUID(), suite.driverID,
		notification.KindPayment, "Payout processed", "Weekly payout sent", base.Add(time.Hour))
	suite.Require().NoError(err)
	second.MarkRead()
	suite.Require().NoError(suite.notificationRepo.Add(ctx, second))

	handler := queries.NewListNotificationsQueryHandler(suite.db)
	query, err := queries.NewListNotificationsQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Notifications, 2)
	suite.Equal(1, result.UnreadCount)
	suite.Equal(second.ID(), result.Notifications[0].ID, "Newest notification should come first")
	suite.True(result.Notifications[0].Read)
	suite.False(result.Notifications[1].Read)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListReviewsQueryHandler_SummaryAndOrder() {
	ctx := context.Background()
	base := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)

	o := suite.seedOrder("120.00", base.Add(-24*time.Hour))
	orderID := o.ID().Bytes()

	reviews := []reviewrepo.ReviewDTO{
		{
			ID:           kernel.NewUUID().Bytes(),
			DriverID:     suite.driverID.Bytes(),
			OrderID:      &orderID,
			Rating:       5,
			Comment:      "Fast and polite",
			ReviewerName: "Meera",
			CreatedAt:    base,
		},
		{
			ID:           kernel.NewUUID().Bytes(),
			DriverID:     suite.driverID.Bytes(),
			Rating:       4,
			ReviewerName: "Arjun",
			CreatedAt:    base.Add(time.Hour),
		},
		{
			ID:        kernel.NewUUID().Bytes(),
			DriverID:  suite.driverID.Bytes(),
			Rating:    2,
			Comment:   "Package arrived late",
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
	suite.Require().NoError(suite.db.Create(&reviews).Error)

	other := reviewrepo.ReviewDTO{
		ID:        kernel.NewUUID().Bytes(),
		DriverID:  kernel.NewUUID().Bytes(),
		Rating:    1,
		CreatedAt: base,
	}
	suite.Require().NoError(suite.db.Create(&other).Error)

	handler := queries.NewListReviewsQueryHandler(suite.db)
	query, err := queries.NewListReviewsQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Reviews, 3)
	suite.Equal(2, result.Reviews[0].Rating, "Newest review should come first")
	suite.Equal("Package arrived late", result.Reviews[0].Comment)
	suite.Equal(5, result.Reviews[2].Rating)
	suite.Require().NotNil(result.Reviews[2].OrderID)
	suite.True(result.Reviews[2].OrderID.IsEqual(o.ID()))
	suite.Equal(3, result.Summary.Count)
	suite.Equal("3.7", result.Summary.Average)
	suite.Equal([5]int{0, 1, 0, 1, 1}, result.Summary.Breakdown)
}

func (suite *QueryHandlersIntegrationTestSuite) TestListReviewsQueryHandler_NoReviews() {
	handler := queries.NewListReviewsQueryHandler(suite.db)
	query, err := queries.NewListReviewsQuery(suite.driverID)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result.Reviews)
	suite.Equal(0, result.Summary.Count)
	suite.Equal("0.0", result.Summary.Average)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDriverProfileQueryHandler_ByAuthID() {
	ctx := context.Background()

	handler := queries.NewGetDriverProfileQueryHandler(suite.db)
	query, err := queries.NewGetDriverProfileQuery(suite.authID)
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(suite.driverID, result.ID)
	suite.Equal("Ravi Kumar", result.FullName)
	suite.Equal("KA01AB1234", result.VehicleNumber)
	suite.False(result.IsActive)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDriverProfileQueryHandler_UnknownAuthID() {
	handler := queries.NewGetDriverProfileQueryHandler(suite.db)
	query, err := queries.NewGetDriverProfileQuery("no-such-identity")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
