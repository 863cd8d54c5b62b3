package commands

import (
	"context"

	"titipin/internal/core/domain/model/order"
	"titipin/internal/core/domain/services"
	"titipin/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle on
// behalf of a participant. The access policy decides who may drive which
// transition, the aggregate decides whether the transition is legal from the
// current status, and the guarded update protects against a concurrent
// transition slipping in between load and save.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the status update and returns the updated order.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	actor := services.Actor{ID: cmd.Actor(), Role: cmd.Role()}
	if err = h.policy.AuthorizeTransition(actor, cmd.Target(), ord); err != nil {
		return nil, err
	}

	previous := ord.Status()

	switch cmd.Target() {
	case order.OnDelivery:
		err = ord.StartDelivery()
	case order.Completed:
		err = ord.Complete()
	case order.Cancelled:
		err = ord.Cancel()
	default:
		err = errs.NewInvalidStateError("update status to "+cmd.Target().String(), previous.String())
	}
	if err != nil {
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
