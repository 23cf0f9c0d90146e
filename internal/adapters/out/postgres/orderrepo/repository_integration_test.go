package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"oms/internal/adapters/out/postgres/orderrepo"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	customerID kernel.UUID
}

var orderDay = time.Date(2025, 5, 21, 9, 30, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.customerID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderAndItems() {
	ctx := context.Background()
	o := suite.createOrder(orderDay, "ORD-20250521-000001")

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", o.ID(), o).Once()
	repository := orderrepo.NewGormOrderRepository(suite.db, tracker)

	suite.Require().NoError(repository.Add(ctx, o))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.LineItemDTO{}, 2)
	tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_Fails() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createOrder(orderDay, "ORD-20250521-000001")))

	err := suite.repository.Add(ctx, suite.createOrder(orderDay, "ORD-20250521-000001"))

	var conflict *errs.ObjectConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("order", conflict.ParamName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsEveryField() {
	ctx := context.Background()
	o := suite.createOrder(orderDay, "ORD-20250521-000007")
	suite.Require().NoError(o.ApplyDiscount(decimal.RequireFromString("0.15")))
	suite.Require().NoError(o.TransitionTo(order.Processing, orderDay.Add(time.Hour)))
	suite.Require().NoError(o.TransitionTo(order.Shipped, orderDay.Add(2*time.Hour)))
	suite.Require().NoError(o.TransitionTo(order.Delivered, orderDay.Add(50*time.Hour)))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(o.IsEqual(stored))
	suite.True(o.CustomerID().IsEqual(stored.CustomerID()))
	suite.Equal(orderDay, stored.OrderDate())
	suite.Equal(order.Delivered, stored.Status())
	suite.Equal("ORD-20250521-000007", stored.TrackingNumber())
	suite.True(o.TotalAmount().Equal(stored.TotalAmount()), "total %s", stored.TotalAmount())
	suite.True(o.DiscountedAmount().Equal(stored.DiscountedAmount()), "discounted %s", stored.DiscountedAmount())
	suite.Require().NotNil(stored.FulfilledAt())
	suite.Equal(orderDay.Add(50*time.Hour), *stored.FulfilledAt())

	suite.Require().Len(stored.Items(), 2)
	for i, item := range o.Items() {
		got := stored.Items()[i]
		suite.True(item.ID().IsEqual(got.ID()))
		suite.Equal(item.ProductName(), got.ProductName())
		suite.True(item.UnitPrice().Equal(got.UnitPrice()))
		suite.Equal(item.Quantity(), got.Quantity())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	stored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(stored)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesItemsAndStatus() {
	ctx := context.Background()
	o := suite.createOrder(orderDay, "ORD-20250521-000002")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	single, err := order.NewLineItem(kernel.NewUUID(), "Monitor", decimal.NewFromInt(300), 1)
	suite.Require().NoError(err)
	newCustomer := kernel.NewUUID()
	suite.Require().NoError(o.Replace(newCustomer, []order.LineItem{single}, order.Processing, orderDay))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(newCustomer.IsEqual(stored.CustomerID()))
	suite.Equal(order.Processing, stored.Status())
	suite.Require().Len(stored.Items(), 1)
	suite.Equal("Monitor", stored.Items()[0].ProductName())
	suite.True(decimal.NewFromInt(300).Equal(stored.TotalAmount()))
	suite.Equal("ORD-20250521-000002", stored.TrackingNumber())
	suite.assertCount(&orderrepo.LineItemDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredThenReset_ClearsFulfillment() {
	ctx := context.Background()
	o := suite.createOrder(orderDay, "ORD-20250521-000003")
	suite.Require().NoError(o.Replace(o.CustomerID(), o.Items(), order.Delivered, orderDay.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Replace(o.CustomerID(), o.Items(), order.Created, orderDay))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Created, stored.Status())
	suite.Nil(stored.FulfilledAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	o := suite.createOrder(orderDay, "ORD-20250521-000004")

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount(&orderrepo.LineItemDTO{}, 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()
	kept := suite.createOrder(orderDay, "ORD-20250521-000005")
	removed := suite.createOrder(orderDay, "ORD-20250521-000006")
	suite.Require().NoError(suite.repository.Add(ctx, kept))
	suite.Require().NoError(suite.repository.Add(ctx, removed))

	suite.Require().NoError(suite.repository.Delete(ctx, removed.ID()))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.LineItemDTO{}, 2)
	_, err := suite.repository.Get(ctx, removed.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByDateRange() {
	ctx := context.Background()
	may1 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	may10 := time.Date(2025, 5, 10, 10, 0, 0, 0, time.UTC)
	may20 := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	for i, day := range []time.Time{may20, may1, may10} {
		o := suite.createOrder(day, fmt.Sprintf("ORD-20250501-%06d", i+1))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	testCases := []struct {
		name     string
		from, to *time.Time
		expected []time.Time
	}{
		{name: "open range", expected: []time.Time{may1, may10, may20}},
		{name: "from only", from: &may10, expected: []time.Time{may10, may20}},
		{name: "to only", to: &may10, expected: []time.Time{may1, may10}},
		{name: "both bounds inclusive", from: &may10, to: &may10, expected: []time.Time{may10}},
		{name: "empty window", from: &may20, to: &may1, expected: []time.Time{}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			orders, err := suite.repository.GetByDateRange(ctx, tc.from, tc.to)
			suite.Require().NoError(err)

			dates := make([]time.Time, 0, len(orders))
			for _, o := range orders {
				suite.NotEmpty(o.Items(), "items must be preloaded")
				dates = append(dates, o.OrderDate())
			}
			suite.Equal(tc.expected, dates)
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCustomer_NewestFirst() {
	ctx := context.Background()
	older := suite.createOrder(orderDay.Add(-48*time.Hour), "ORD-20250519-000001")
	newer := suite.createOrder(orderDay, "ORD-20250521-000001")
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	item, err := order.NewLineItem(kernel.NewUUID(), "Cable", decimal.NewFromInt(5), 1)
	suite.Require().NoError(err)
	foreign, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, orderDay)
	suite.Require().NoError(err)
	suite.Require().NoError(foreign.AssignTrackingNumber("ORD-20250521-000002"))
	suite.Require().NoError(suite.repository.Add(ctx, foreign))

	orders, err := suite.repository.GetByCustomer(ctx, suite.customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(newer.IsEqual(orders[0]))
	suite.True(older.IsEqual(orders[1]))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestMaxTrackingSequence() {
	ctx := context.Background()

	maxSequence, err := suite.repository.MaxTrackingSequence(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), maxSequence)

	// The highest suffix wins regardless of the date part or insertion order.
	for _, trackingNumber := range []string{
		"ORD-20250521-000012",
		"ORD-20240101-000340",
		"ORD-20250601-000007",
		"legacy-42",
	} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createOrder(orderDay, trackingNumber)))
	}

	maxSequence, err = suite.repository.MaxTrackingSequence(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(340), maxSequence)
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrder(date time.Time, trackingNumber string) *order.Order {
	keyboard, err := order.NewLineItem(kernel.NewUUID(), "Keyboard", decimal.RequireFromString("49.90"), 2)
	suite.Require().NoError(err)
	mouse, err := order.NewLineItem(kernel.NewUUID(), "Mouse", decimal.RequireFromString("19.99"), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), suite.customerID, []order.LineItem{keyboard, mouse}, date)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AssignTrackingNumber(trackingNumber))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
