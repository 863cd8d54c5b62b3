package commands

import (
	"context"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/core/domain/services"
)

// AcceptOfferCommandHandler performs the correctness-critical operation of
// the bidding workflow: exactly one offer across an order's offer set may
// ever be accepted, no matter how many acceptance attempts race.
//
// The handler mutates the order (status, deliverer, final fee) and the
// winning offer together in one transaction, and persists the order with a
// conditional write guarded on "status is still WaitingForOffers". Sibling
// offers are left untouched; they become unacceptable because the same guard
// rejects any later acceptance attempt on them.
type AcceptOfferCommandHandler struct {
	uowFactory BiddingUoWFactory
	policy     services.AccessPolicy
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
func NewAcceptOfferCommandHandler(uowFactory BiddingUoWFactory) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the acceptance. Returns the updated order so the caller
// can report the new assignment.
//
// Failure modes:
//   - errs.ErrObjectNotFound: the offer or its order does not exist
//   - errs.ErrAccessDenied: the caller is not the order's requester
//   - errs.ErrInvalidState: the order already left WaitingForOffers, either
//     before this call or concurrently with it (the guarded update lost)
func (h AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) (*order.Order, error) {
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
	offerRepo := uow.OfferRepository()

	chosen, err := offerRepo.Get(ctx, cmd.OfferID())
	if err != nil {
		return nil, err
	}

	ord, err := orderRepo.Get(ctx, chosen.OrderID())
	if err != nil {
		return nil, err
	}

	actor := services.Actor{ID: cmd.RequesterID(), Role: kernel.RoleCustomer}
	if err = h.policy.Authorize(actor, services.ActionAcceptOffer, ord); err != nil {
		return nil, err
	}

	if err = ord.AcceptOffer(chosen.Deliverer(), chosen.Fee()); err != nil {
		return nil, err
	}

	if err = chosen.Accept(); err != nil {
		return nil, err
	}

	// The guard on the previous status is what serializes racing acceptances:
	// whoever persists first wins, everyone else gets ErrInvalidState.
	if err = orderRepo.UpdateGuarded(ctx, ord, order.WaitingForOffers); err != nil {
		return nil, err
	}

	if err = offerRepo.Update(ctx, chosen); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
