package productrepo_test

import (
	"context"
	"testing"
	"time"

	"aims/internal/adapters/out/postgres/productrepo"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	p := suite.newProduct("Norwegian Wood", "0.35", 12)
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.ID(), got.ID())
	suite.Equal(catalog.Book, got.Category())
	suite.Equal("Norwegian Wood", got.Title())
	suite.Equal(kernel.Money(150000), got.Price())
	suite.Equal(kernel.Money(120000), got.Value())
	suite.True(got.Weight().IsEqual(kernel.MustWeight("0.35")))
	suite.Equal(12, got.Quantity())
	suite.Equal(10, got.DiscountPercent())
	suite.Equal(p.SalePrice(), got.SalePrice())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_NotConstructed_ReturnsError() {
	err := suite.repository.Add(context.Background(), &catalog.Product{})

	suite.Require().ErrorIs(err, catalog.ErrProductIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(got)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsStock() {
	ctx := context.Background()
	p := suite.newProduct("Kafka on the Shore", "0.4", 5)
	suite.tracker.On("TrackAggregate", p.ID(), p).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.Withdraw(3))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(2, got.Quantity())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	p := suite.newProduct("Ghost", "0.1", 1)

	err := suite.repository.Update(context.Background(), p)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetMany_SkipsMissingAndOrdersByID() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	a := suite.newProduct("A", "0.1", 1)
	b := suite.newProduct("B", "0.2", 2)
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.GetMany(ctx, []kernel.UUID{b.ID(), kernel.NewUUID(), a.ID()})

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Less(got[0].ID().String(), got[1].ID().String())

	empty, err := suite.repository.GetMany(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetManyForUpdate_BlocksConcurrentWriter() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	p := suite.newProduct("Locked", "0.1", 4)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	locked, err := productrepo.NewGormProductRepository(tx, suite.tracker).GetManyForUpdate(ctx, []kernel.UUID{p.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(locked, 1)

	done := make(chan error, 1)
	go func() {
		other := suite.db.Begin()
		defer other.Rollback()
		_, lockErr := productrepo.NewGormProductRepository(other, suite.tracker).
			GetManyForUpdate(ctx, []kernel.UUID{p.ID()})
		done <- lockErr
	}()

	select {
	case <-done:
		suite.Fail("second transaction acquired a held row lock")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(locked[0].Withdraw(4))
	suite.Require().NoError(productrepo.NewGormProductRepository(tx, suite.tracker).Update(ctx, locked[0]))
	suite.Require().NoError(tx.Commit().Error)
	suite.Require().NoError(<-done)

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(0, got.Quantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) newProduct(title, weight string, stock int) *catalog.Product {
	p, err := catalog.NewProduct(kernel.NewUUID(), catalog.Book, title, 150000, 120000,
		kernel.MustWeight(weight), stock, 10)
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
