package cmd

import (
	"driverhub/internal/adapters/out/postgres"
	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverProfileCommandHandler() commands.UpdateDriverProfileCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateStartShiftCommandHandler() commands.StartShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartShiftCommandHandler(f)
}

func (c *CompositionRoot) CreateEndShiftCommandHandler() commands.EndShiftCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEndShiftCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseExpiredShiftsCommandHandler() commands.CloseExpiredShiftsCommandHandler {
	var f commands.ShiftUoWFactory = FuncShiftUoWFactory(func() commands.ShiftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseExpiredShiftsCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitPenaltyAppealCommandHandler() commands.SubmitPenaltyAppealCommandHandler {
	var f commands.PenaltyUoWFactory = FuncPenaltyUoWFactory(func() commands.PenaltyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitPenaltyAppealCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAllNotificationsReadCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDriverProfileQueryHandler() queries.GetDriverProfileQueryHandler {
	return queries.NewGetDriverProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByDayQueryHandler() queries.ListOrdersByDayQueryHandler {
	return queries.NewListOrdersByDayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRecentActivityQueryHandler() queries.RecentActivityQueryHandler {
	return queries.NewRecentActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEarningsSummaryQueryHandler() queries.EarningsSummaryQueryHandler {
	return queries.NewEarningsSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEarningsRangeQueryHandler() queries.EarningsRangeQueryHandler {
	return queries.NewEarningsRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackTimeQueryHandler() queries.TrackTimeQueryHandler {
	return queries.NewTrackTimeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPenaltiesQueryHandler() queries.ListPenaltiesQueryHandler {
	return queries.NewListPenaltiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListReviewsQueryHandler() queries.ListReviewsQueryHandler {
	return queries.NewListReviewsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncShiftUoWFactory func() commands.ShiftUoW

func (f FuncShiftUoWFactory) Create() commands.ShiftUoW {
	return f()
}

type FuncPenaltyUoWFactory func() commands.PenaltyUoW

func (f FuncPenaltyUoWFactory) Create() commands.PenaltyUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
