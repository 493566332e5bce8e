package cmd

import (
	"orders/internal/adapters/out/postgres/counterrepo"
	"orders/internal/adapters/out/postgres/eventrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB *gorm.DB
	logger *zap.Logger

	orders   ports.OrderRepository
	events   ports.EventRepository
	counters ports.CounterRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:   gormDB,
		logger:   logger,
		orders:   orderrepo.NewGormOrderRepository(gormDB, logger),
		events:   eventrepo.NewGormEventRepository(gormDB, logger),
		counters: counterrepo.NewGormCounterRepository(gormDB, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.counters)
}

func (c *CompositionRoot) CreateRegisterEventCommandHandler() commands.RegisterEventCommandHandler {
	return commands.NewRegisterEventCommandHandler(c.orders, c.events)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders, c.events, c.logger)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.orders, c.events, c.logger)
}
