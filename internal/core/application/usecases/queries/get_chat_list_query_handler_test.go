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

type GetChatListQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetChatListQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetChatListQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startPostgres(&suite.Suite)
	suite.handler = queries.NewGetChatListQueryHandler(suite.db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, mockAggregateTracker{})
}

func (suite *GetChatListQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetChatListQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetChatListQueryHandlerTestSuite) addOrder(requesterID kernel.UUID, delivererID *kernel.UUID) *order.Order {
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

func (suite *GetChatListQueryHandlerTestSuite) TestHandle_CustomerSeesAssignedOrdersOnly() {
	requesterID := kernel.NewUUID()
	delivererID := kernel.NewUUID()

	assigned := suite.addOrder(requesterID, &delivererID)
	suite.addOrder(requesterID, nil) // still collecting offers, no channel yet
	suite.addOrder(kernel.NewUUID(), &delivererID)

	query, err := queries.NewGetChatListQuery(requesterID, kernel.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(assigned.ID(), result[0].OrderID)
	suite.Equal(delivererID, result[0].CounterpartID)
	suite.Equal(order.OfferAccepted, result[0].Status)
}

func (suite *GetChatListQueryHandlerTestSuite) TestHandle_DelivererSeesRequesterAsCounterpart() {
	requesterID := kernel.NewUUID()
	delivererID := kernel.NewUUID()
	assigned := suite.addOrder(requesterID, &delivererID)

	query, err := queries.NewGetChatListQuery(delivererID, kernel.RoleDeliverer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(assigned.ID(), result[0].OrderID)
	suite.Equal(requesterID, result[0].CounterpartID)
}

func (suite *GetChatListQueryHandlerTestSuite) TestHandle_NoChannels_ReturnsEmptySlice() {
	query, err := queries.NewGetChatListQuery(kernel.NewUUID(), kernel.RoleCustomer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestGetChatListQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetChatListQueryHandlerTestSuite))
}
