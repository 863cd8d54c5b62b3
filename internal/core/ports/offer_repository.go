package ports

import (
	"context"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offers.
// Offers are append-then-update entities: losing bids are never deleted.
type OfferRepository interface {
	// Add persists a new offer. A second open offer by the same deliverer on
	// the same order violates a uniqueness constraint and is returned as an
	// errs.DuplicateOperationError.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// UpdateFeeGuarded persists a fee change only if the stored offer is still
	// open (a conditional write: "... WHERE accepted = false"). When the offer
	// was concurrently accepted, no change is made and an
	// errs.InvalidStateError is returned. An accepted offer is immutable; this
	// guard enforces that at the row level, so a resubmission racing an
	// acceptance can never overwrite the winner's state.
	UpdateFeeGuarded(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer by its unique identifier.
	// Returns an errs.ObjectNotFoundError if no such offer exists.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetByOrderAndDeliverer retrieves the deliverer's existing offer on the
	// order, if any. Returns an errs.ObjectNotFoundError when the deliverer
	// has not bid on the order yet.
	GetByOrderAndDeliverer(ctx context.Context, orderID, delivererID kernel.UUID) (*offer.Offer, error)
}
