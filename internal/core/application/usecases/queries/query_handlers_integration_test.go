package queries_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// memoryCache is an in-memory ports.AnalyticsCache used to observe cache
// interactions without a cache server.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	c.ttls[key] = ttl
	c.sets++
	return nil
}

// expire drops a key, the way Redis does once the TTL elapses.
func (c *memoryCache) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	delete(c.ttls, key)
}

type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	orderRepo    *orderrepo.GormOrderRepository
	customerRepo *customerrepo.GormCustomerRepository
	cache        *memoryCache
	testCustomer *customer.Customer
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db)

	suite.testCustomer, err = customer.NewCustomer(
		kernel.NewUUID(), "Test Customer", "test@email.com", customer.Regular, false,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(ctx, suite.testCustomer))
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
	suite.cache = newMemoryCache()
}

func (suite *QueryHandlersIntegrationTestSuite) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createOrder persists an order with one line item and walks it through
// the given status sequence.
func (suite *QueryHandlersIntegrationTestSuite) createOrder(quantity int, price string, statuses ...order.Status) *order.Order {
	o, err := order.NewOrder(suite.testCustomer.ID())
	suite.Require().NoError(err)

	unitPrice, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItems([]order.ItemSpec{
		{ProductID: kernel.NewUUID(), Quantity: quantity, UnitPrice: unitPrice},
	}))
	suite.Require().NoError(o.ApplyDiscount(kernel.ZeroMoney()))

	for _, status := range statuses {
		suite.Require().NoError(o.UpdateStatus(status))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

// restoreDeliveredOrder persists a delivered single-item order with explicit
// creation and fulfillment timestamps.
func (suite *QueryHandlersIntegrationTestSuite) restoreDeliveredOrder(price string, createdAt, fulfilledAt time.Time) *order.Order {
	id := kernel.NewUUID()

	unitPrice, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)
	item, err := order.NewItem(id, kernel.NewUUID(), 1, unitPrice)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(
		id, suite.testCustomer.ID(),
		unitPrice, unitPrice,
		order.Delivered,
		createdAt, &fulfilledAt,
		[]order.Item{item},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_ReturnsFullDetail() {
	o := suite.createOrder(2, "49.99")
	handler := queries.NewGetOrderQueryHandler(suite.db, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrderQuery(o.ID().String()))

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Data)
	suite.Equal(o.ID().String(), resp.Data.OrderID)
	suite.Equal(suite.testCustomer.ID().String(), resp.Data.CustomerID)
	suite.InDelta(99.98, resp.Data.TotalAmount, 0.001)
	suite.Equal("Pending", resp.Data.Status)
	suite.Require().Len(resp.Data.Items, 1)
	suite.Equal(2, resp.Data.Items[0].Quantity)
	suite.InDelta(49.99, resp.Data.Items[0].UnitPrice, 0.001)
	suite.InDelta(99.98, resp.Data.Items[0].Subtotal, 0.001)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_MissingOrderReturnsNotFound() {
	handler := queries.NewGetOrderQueryHandler(suite.db, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrderQuery(kernel.NewUUID().String()))

	suite.Require().NoError(err)
	suite.False(resp.Success)
	suite.Equal(pipeline.CodeNotFound, resp.Code())
	suite.Equal("Order not found!", resp.Message)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_PagesNewestFirst() {
	for range 5 {
		suite.createOrder(1, "10")
	}
	handler := queries.NewGetOrdersQueryHandler(suite.db, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrdersQuery(1, 2, ""))

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Data)
	suite.Len(resp.Data.Orders, 2)
	suite.Equal(5, resp.Data.TotalCount)
	suite.Equal(3, resp.Data.TotalPages)
	suite.False(resp.Data.Orders[0].CreatedAt.Before(resp.Data.Orders[1].CreatedAt))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_FiltersByStatus() {
	suite.createOrder(1, "10")
	suite.createOrder(1, "10", order.Processing)
	suite.createOrder(1, "10", order.Processing, order.Shipped)
	handler := queries.NewGetOrdersQueryHandler(suite.db, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrdersQuery(1, 10, "Processing"))

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Data)
	suite.Equal(1, resp.Data.TotalCount)
	suite.Equal("Processing", resp.Data.Orders[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_UnrecognizedFilterIsIgnored() {
	suite.createOrder(1, "10")
	suite.createOrder(1, "10", order.Processing)
	handler := queries.NewGetOrdersQueryHandler(suite.db, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrdersQuery(1, 10, "Teleported"))

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Data)
	suite.Equal(2, resp.Data.TotalCount)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderAnalytics_EmptyOrderSet() {
	handler := queries.NewGetOrderAnalyticsQueryHandler(suite.db, suite.cache, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Data)
	suite.Equal(0, resp.Data.TotalOrders)
	suite.Zero(resp.Data.AverageOrderValue)
	suite.Zero(resp.Data.AverageFulfillmentTimeHours)
	suite.Zero(resp.Data.PendingOrders)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderAnalytics_ComputesSnapshot() {
	suite.createOrder(1, "100")
	suite.createOrder(1, "200", order.Processing)
	suite.createOrder(1, "300", order.Processing, order.Shipped, order.Delivered)
	handler := queries.NewGetOrderAnalyticsQueryHandler(suite.db, suite.cache, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Data)
	suite.Equal(3, resp.Data.TotalOrders)
	suite.InDelta(200.0, resp.Data.AverageOrderValue, 0.001)
	suite.Equal(1, resp.Data.PendingOrders)
	suite.Equal(1, resp.Data.ProcessingOrders)
	suite.Equal(1, resp.Data.DeliveredOrders)
	suite.Zero(resp.Data.ShippedOrders)
	suite.Zero(resp.Data.CancelledOrders)
	suite.Zero(resp.Data.ReturnedOrders)
	suite.Equal(queries.AnalyticsCacheTTL, suite.cache.ttls[queries.AnalyticsCacheKey])
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderAnalytics_ServesCachedSnapshot() {
	suite.createOrder(1, "100")
	handler := queries.NewGetOrderAnalyticsQueryHandler(suite.db, suite.cache, suite.logger())

	first, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())
	suite.Require().NoError(err)

	// New orders must not be visible while the snapshot is cached.
	suite.createOrder(1, "500")

	second, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())
	suite.Require().NoError(err)
	suite.Equal(*first.Data, *second.Data)
	suite.Equal("Order analytics retrieved from cache", second.Message)
	suite.Equal(1, suite.cache.sets)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderAnalytics_RecomputesAfterExpiry() {
	suite.createOrder(1, "100")
	handler := queries.NewGetOrderAnalyticsQueryHandler(suite.db, suite.cache, suite.logger())

	first, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())
	suite.Require().NoError(err)
	suite.Equal(1, first.Data.TotalOrders)

	suite.createOrder(1, "500", order.Processing)
	suite.cache.expire(queries.AnalyticsCacheKey)

	second, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())

	suite.Require().NoError(err)
	suite.Require().NotNil(second.Data)
	suite.Equal(2, second.Data.TotalOrders)
	suite.InDelta(300.0, second.Data.AverageOrderValue, 0.001)
	suite.Equal(1, second.Data.ProcessingOrders)
	suite.Equal("Order analytics retrieved successfully", second.Message)
	suite.Equal(2, suite.cache.sets)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderAnalytics_AveragesFulfillmentOverFulfilledOnly() {
	now := time.Now().UTC()
	suite.restoreDeliveredOrder("100", now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	suite.restoreDeliveredOrder("100", now.Add(-72*time.Hour), now.Add(-24*time.Hour))
	suite.createOrder(1, "100")
	handler := queries.NewGetOrderAnalyticsQueryHandler(suite.db, suite.cache, suite.logger())

	resp, err := handler.Handle(context.Background(), queries.NewGetOrderAnalyticsQuery())

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Data)
	suite.Equal(3, resp.Data.TotalOrders)
	// 24h and 48h to fulfill; the pending order must not drag the average.
	suite.InDelta(36.0, resp.Data.AverageFulfillmentTimeHours, 0.01)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
