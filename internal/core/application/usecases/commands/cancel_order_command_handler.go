package commands

import (
	"context"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/core/domain/services"
)

// CancelOrderCommandHandler withdraws an order on the requester's behalf.
// Cancellation from OfferAccepted releases the assignment and the fixed fee;
// the previously assigned deliverer sees the order disappear from their
// active set.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the cancellation and returns the cancelled order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := services.Actor{ID: cmd.RequesterID(), Role: kernel.RoleCustomer}
	if err = h.policy.Authorize(actor, services.ActionCancelOrder, ord); err != nil {
		return nil, err
	}

	previous := ord.Status()
	if err = ord.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateGuarded(ctx, ord, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
