package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "oms/internal/adapters/in/http"
	"oms/internal/adapters/out/postgres"
	"oms/internal/adapters/out/postgres/customerrepo"
	"oms/internal/adapters/out/postgres/orderrepo"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/services"
	"oms/internal/jobs"
	"oms/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	allocator  *services.TrackingNumberAllocator
	metrics    *metrics.OrderMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithCommitObserver(orderMetrics)),
		allocator:  services.NewTrackingNumberAllocator(time.Now),
		metrics:    orderMetrics,
		logger:     logger,
	}
}

// InitializeTrackingNumbers seeds the shared allocator with the highest sequence in
// storage and exports its position. Call it once before serving requests.
func (c *CompositionRoot) InitializeTrackingNumbers(ctx context.Context) error {
	maxObserved, err := c.orderReader().MaxTrackingSequence(ctx)
	if err != nil {
		return fmt.Errorf("read highest tracking sequence: %w", err)
	}
	c.allocator.InitializeFromExisting(maxObserved)

	c.logger.InfoContext(ctx, "Tracking number allocator initialized", "sequence", maxObserved)
	return c.metrics.TrackSequence(c.allocator)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		services.NewDiscountEngine(time.Now),
		c.allocator,
		time.Now,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, services.NewDiscountEngine(time.Now), time.Now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, time.Now, c.metrics)
}

func (c *CompositionRoot) CreateChangeOrderStatusesCommandHandler() commands.ChangeOrderStatusesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusesCommandHandler(f, time.Now, c.metrics)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateChangeCustomerSegmentCommandHandler() commands.ChangeCustomerSegmentCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCustomerSegmentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(customerrepo.NewGormCustomerRepository(c.gormDB, discardTracker{}))
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersBySegmentQueryHandler() queries.GetCustomersBySegmentQueryHandler {
	return queries.NewGetCustomersBySegmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersPageQueryHandler() queries.GetOrdersPageQueryHandler {
	return queries.NewGetOrdersPageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderAnalyticsQueryHandler() queries.GetOrderAnalyticsQueryHandler {
	return queries.NewGetOrderAnalyticsQueryHandler(c.orderReader(), services.NewAnalyticsAggregator(), c.metrics)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		UpdateOrder:           c.CreateUpdateOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		ChangeOrderStatuses:   c.CreateChangeOrderStatusesCommandHandler(),
		DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
		CreateCustomer:        c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:        c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:        c.CreateDeleteCustomerCommandHandler(),
		ChangeCustomerSegment: c.CreateChangeCustomerSegmentCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetOrdersPage:         c.CreateGetOrdersPageQueryHandler(),
		GetCustomerOrders:     c.CreateGetCustomerOrdersQueryHandler(),
		GetCustomer:           c.CreateGetCustomerQueryHandler(),
		GetAllCustomers:       c.CreateGetAllCustomersQueryHandler(),
		GetCustomersBySegment: c.CreateGetCustomersBySegmentQueryHandler(),
		GetOrderAnalytics:     c.CreateGetOrderAnalyticsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateAnalyticsReportJob() *jobs.AnalyticsReportJob {
	return jobs.NewAnalyticsReportJob(
		c.CreateGetOrderAnalyticsQueryHandler(),
		c.configs.AnalyticsSchedule,
		c.configs.AnalyticsWindow,
		time.Now,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAnalyticsReportJob())
}

// orderReader reads outside any transaction.
func (c *CompositionRoot) orderReader() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, discardTracker{})
}

// discardTracker serves repositories used for reads only.
type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.UUID, any) {}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
