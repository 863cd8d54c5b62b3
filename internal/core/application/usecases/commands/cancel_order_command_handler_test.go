package commands_test

import (
	"testing"

	"titipin/internal/core/application/usecases/commands"
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_WhileWaiting(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	ord := newWaitingOrder(t, requesterID)

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), requesterID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("UpdateGuarded", mock.Anything, ord, order.WaitingForOffers).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AfterAcceptanceReleasesAssignment(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	ord := newAssignedOrder(t, requesterID, kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), requesterID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("UpdateGuarded", mock.Anything, ord, order.OfferAccepted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cancelled.Status())
	assert.Nil(t, cancelled.Deliverer())
	assert.Nil(t, cancelled.FinalFee())
}

func TestCancelOrderCommandHandler_Handle_NotRequester(t *testing.T) {
	ctx := t.Context()
	ord := newWaitingOrder(t, kernel.NewUUID())

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, order.WaitingForOffers, ord.Status())
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderUnchanged(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()
	delivererID := kernel.NewUUID()
	fee := int64(8000)
	ord, err := order.RestoreOrder(
		kernel.NewUUID(), requesterID, "Nasi Goreng x2", 2, mustAddress(t, "Jl. A No.1"),
		order.Completed, &delivererID, &fee)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), requesterID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Completed, ord.Status())
}
