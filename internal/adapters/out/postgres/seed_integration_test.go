package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgrespkg "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// SeedIntegrationTestSuite verifies demo data seeding against PostgreSQL.
type SeedIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *SeedIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &customerrepo.CustomerDTO{},
	))
}

func (suite *SeedIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SeedIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers, orders, order_items").Error)
}

func (suite *SeedIntegrationTestSuite) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (suite *SeedIntegrationTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func (suite *SeedIntegrationTestSuite) TestSeedDemoData_PopulatesFreshDatabase() {
	ctx := context.Background()

	suite.Require().NoError(postgrespkg.SeedDemoData(ctx, suite.db, suite.logger()))

	suite.EqualValues(5, suite.count(&customerrepo.CustomerDTO{}))
	suite.EqualValues(5, suite.count(&orderrepo.OrderDTO{}))
	suite.EqualValues(7, suite.count(&orderrepo.ItemDTO{}))

	// Every seeded status is represented once.
	for _, status := range []order.Status{
		order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled,
	} {
		var n int64
		suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
			Where("status = ?", int(status)).Count(&n).Error)
		suite.EqualValues(1, n, "status %s", status)
	}
}

func (suite *SeedIntegrationTestSuite) TestSeedDemoData_DeliveredOrderIsFulfilled() {
	ctx := context.Background()
	suite.Require().NoError(postgrespkg.SeedDemoData(ctx, suite.db, suite.logger()))

	orderID, err := kernel.UUIDFromString("b8f2d4a7-3c5e-4b9f-a1d8-7e4c2f9b6a3d")
	suite.Require().NoError(err)

	restored, err := orderrepo.NewGormOrderRepository(suite.db, noopTracker{}).Get(ctx, orderID)
	suite.Require().NoError(err)

	suite.Equal(order.Delivered, restored.Status())
	suite.Require().NotNil(restored.FulfilledAt())
	suite.True(restored.FulfilledAt().After(restored.CreatedAt()))
	suite.Len(restored.Items(), 2)
}

func (suite *SeedIntegrationTestSuite) TestSeedDemoData_SecondRunIsNoop() {
	ctx := context.Background()

	suite.Require().NoError(postgrespkg.SeedDemoData(ctx, suite.db, suite.logger()))
	suite.Require().NoError(postgrespkg.SeedDemoData(ctx, suite.db, suite.logger()))

	suite.EqualValues(5, suite.count(&customerrepo.CustomerDTO{}))
	suite.EqualValues(5, suite.count(&orderrepo.OrderDTO{}))
	suite.EqualValues(7, suite.count(&orderrepo.ItemDTO{}))
}

func TestSeedIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SeedIntegrationTestSuite))
}
