package queries_test

import (
	"context"
	"testing"
	"time"

	"titipin/internal/adapters/out/postgres/orderrepo"
	"titipin/internal/core/application/usecases/queries"
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetAvailableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(&suite.Suite)
	suite.handler = queries.NewGetAvailableOrdersQueryHandler(suite.db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, mockAggregateTracker{})
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) addOrder(desc string) *order.Order {
	destination, err := kernel.NewAddress("Jl. A No.1")
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), desc, 1, destination)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), ord))
	return ord
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_ExcludesNonWaitingOrders() {
	waiting := suite.addOrder("Nasi Goreng x2")

	assigned := suite.addOrder("Mie Ayam")
	suite.Require().NoError(assigned.AcceptOffer(kernel.NewUUID(), 8000))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), assigned))

	cancelled := suite.addOrder("Es Teh")
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), cancelled))

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(waiting.ID(), result[0].ID)
	suite.Equal(order.WaitingForOffers, result[0].Status)
	suite.Nil(result[0].DelivererID)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	older := suite.addOrder("Nasi Goreng x2")
	newer := suite.addOrder("Mie Ayam")

	// Separate the creation timestamps explicitly; both inserts land within
	// the same second otherwise.
	now := time.Now().Unix()
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", older.ID().Bytes()).Update("created_at", now-60).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", newer.ID().Bytes()).Update("created_at", now).Error)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAvailableOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(older.ID(), result[1].ID)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAvailableOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAvailableOrdersQuery constructor")
}

func TestGetAvailableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableOrdersQueryHandlerTestSuite))
}
