package commands

import (
	"context"
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/offer"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"
)

// SubmitOfferCommandHandler mediates the many-offers side of the bidding
// negotiation: a deliverer bids a fee on an order that is still collecting
// offers.
//
// Idempotency: a deliverer who already has an open offer on the order gets
// that offer's fee updated in place; the database uniqueness constraint on
// (order, deliverer) backstops the check under concurrent resubmission.
type SubmitOfferCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewSubmitOfferCommandHandler creates a handler for offer submission.
func NewSubmitOfferCommandHandler(uowFactory BiddingUoWFactory) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer submission. Returns the identifier of the
// effective offer: the command's offerID for a new bid, or the existing
// offer's id for a resubmission.
//
// Fails with errs.ErrInvalidState when the order is no longer collecting
// offers (already assigned, cancelled, or beyond).
func (h SubmitOfferCommandHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	offerRepo := uow.OfferRepository()

	// The locked read serializes the submission against a concurrent
	// acceptance: the status check below and every offer write in this
	// transaction happen while the order row is held, so an acceptance
	// cannot slip in between them.
	ord, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if ord.Status() != order.WaitingForOffers {
		return kernel.UUID{}, errs.NewInvalidStateError("submit offer", ord.Status().String())
	}

	existing, err := offerRepo.GetByOrderAndDeliverer(ctx, cmd.OrderID(), cmd.DelivererID())
	switch {
	case err == nil:
		// Resubmission: update the open bid in place. The guarded write only
		// matches an offer that is still open, so even a resubmission that
		// raced past the order lock cannot touch an accepted offer.
		if err = existing.UpdateFee(cmd.Fee()); err != nil {
			return kernel.UUID{}, err
		}
		if err = offerRepo.UpdateFeeGuarded(ctx, existing); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return existing.ID(), nil

	case errors.Is(err, errs.ErrObjectNotFound):
		newOffer, offerErr := offer.NewOffer(cmd.OfferID(), cmd.OrderID(), cmd.DelivererID(), cmd.Fee())
		if offerErr != nil {
			return kernel.UUID{}, offerErr
		}
		if err = offerRepo.Add(ctx, newOffer); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return newOffer.ID(), nil

	default:
		return kernel.UUID{}, err
	}
}
