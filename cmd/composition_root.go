package cmd

import (
	"log/slog"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	analyticsCache ports.AnalyticsCache
	logger         *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	analyticsCache ports.AnalyticsCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		analyticsCache: analyticsCache,
		logger:         logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderPipeline() pipeline.Pipeline[commands.CreateOrderCommand, commands.CreateOrderResponse] {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateOrderCommandHandler(
		f,
		services.NewDiscountResolver(services.DefaultDiscountRules()...),
		c.logger,
	)
	return pipeline.New[commands.CreateOrderCommand, commands.CreateOrderResponse](
		"create_order",
		commands.NewCreateOrderValidator(),
		handler,
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusPipeline() pipeline.Pipeline[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse] {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewUpdateOrderStatusCommandHandler(f, c.logger)
	return pipeline.New[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse](
		"update_order_status",
		commands.NewUpdateOrderStatusValidator(),
		handler,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderPipeline() pipeline.Pipeline[queries.GetOrderQuery, queries.GetOrderResponse] {
	handler := queries.NewGetOrderQueryHandler(c.gormDB, c.logger)
	return pipeline.New[queries.GetOrderQuery, queries.GetOrderResponse](
		"get_order",
		queries.NewGetOrderValidator(),
		handler,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrdersPipeline() pipeline.Pipeline[queries.GetOrdersQuery, queries.OrdersPagedResponse] {
	handler := queries.NewGetOrdersQueryHandler(c.gormDB, c.logger)
	return pipeline.New[queries.GetOrdersQuery, queries.OrdersPagedResponse](
		"get_orders",
		nil,
		handler,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderAnalyticsPipeline() pipeline.Pipeline[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse] {
	handler := c.createGetOrderAnalyticsQueryHandler()
	return pipeline.New[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse](
		"get_order_analytics",
		nil,
		handler,
		c.logger,
	)
}

func (c *CompositionRoot) CreateAnalyticsRefreshJob() *jobs.AnalyticsRefreshJob {
	return jobs.NewAnalyticsRefreshJob(c.createGetOrderAnalyticsQueryHandler(), c.logger)
}

func (c *CompositionRoot) createGetOrderAnalyticsQueryHandler() queries.GetOrderAnalyticsQueryHandler {
	return queries.NewGetOrderAnalyticsQueryHandler(c.gormDB, c.analyticsCache, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
