package queries_test

import (
	"context"
	"testing"

	"titipin/internal/adapters/out/postgres/orderrepo"
	"titipin/internal/core/application/usecases/queries"
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetMyOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMyOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetMyOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(&suite.Suite)
	suite.handler = queries.NewGetMyOrdersQueryHandler(suite.db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, mockAggregateTracker{})
}

func (suite *GetMyOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetMyOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetMyOrdersQueryHandlerTestSuite) addOrder(requesterID kernel.UUID, delivererID *kernel.UUID) *order.Order {
	destination, err := kernel.NewAddress("Jl. A No.1")
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), requesterID, "Nasi Goreng x2", 2, destination)
	suite.Require().NoError(err)
	if delivererID != nil {
		suite.Require().NoError(ord.AcceptOffer(*delivererID, 8000))
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), ord))
	return ord
}

func (suite *GetMyOrdersQueryHandlerTestSuite) TestHandle_CustomerSeesOwnOrdersAcrossStatuses() {
	requesterID := kernel.NewUUID()
	delivererID := kernel.NewUUID()

	waiting := suite.addOrder(requesterID, nil)
	assigned := suite.addOrder(requesterID, &delivererID)
	suite.addOrder(kernel.NewUUID(), nil) // someone else's order

	query, err := queries.NewGetMyOrdersQuery(requesterID, kernel.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	ids := []kernel.UUID{result[0].ID, result[1].ID}
	suite.Contains(ids, waiting.ID())
	suite.Contains(ids, assigned.ID())
}

func (suite *GetMyOrdersQueryHandlerTestSuite) TestHandle_DelivererSeesAssignmentsOnly() {
	delivererID := kernel.NewUUID()

	assigned := suite.addOrder(kernel.NewUUID(), &delivererID)
	suite.addOrder(kernel.NewUUID(), nil)
	otherDeliverer := kernel.NewUUID()
	suite.addOrder(kernel.NewUUID(), &otherDeliverer)

	query, err := queries.NewGetMyOrdersQuery(delivererID, kernel.RoleDeliverer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(assigned.ID(), result[0].ID)
	suite.Require().NotNil(result[0].DelivererID)
	suite.Equal(delivererID, *result[0].DelivererID)
}

func (suite *GetMyOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetMyOrdersQuery(kernel.NewUUID(), kernel.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestGetMyOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMyOrdersQueryHandlerTestSuite))
}
