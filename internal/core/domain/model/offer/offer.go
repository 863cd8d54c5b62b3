package offer

import (
	"errors"
	"fmt"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer or RestoreOffer")
)

// Offer represents a deliverer's bid to fulfill a specific pending order.
// Many offers may exist per order, at most one per deliverer; exactly one
// across the order's offer set can ever be accepted. Offers are never
// deleted: losing bids remain as history.
//
// Offer maintains these invariants:
//   - Must have valid offer, order, and deliverer identifiers
//   - The proposed fee is a positive currency amount
//   - An accepted offer is immutable
type Offer struct {
	id          kernel.UUID
	orderID     kernel.UUID
	delivererID kernel.UUID

	// fee is the proposed delivery fee in the smallest currency unit.
	fee int64

	// accepted marks the winning bid. At most one offer per order carries it.
	accepted bool

	isConstructed bool
}

// NewOffer creates a new open Offer for the given order and deliverer.
// Returns a validation error if any identifier is invalid or the fee is not
// positive.
func NewOffer(id kernel.UUID, orderID kernel.UUID, delivererID kernel.UUID, fee int64) (*Offer, error) {
	o := &Offer{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderID(orderID),
		o.setDelivererID(delivererID),
		o.setFee(fee),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOffer reconstructs an Offer from persisted state, including its
// acceptance flag.
func RestoreOffer(
	id kernel.UUID,
	orderID kernel.UUID,
	delivererID kernel.UUID,
	fee int64,
	accepted bool,
) (*Offer, error) {
	o, err := NewOffer(id, orderID, delivererID, fee)
	if err != nil {
		return nil, err
	}

	o.accepted = accepted
	return o, nil
}

// Validate ensures the Offer instance was properly constructed.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}

	return nil
}

// IsEqual compares two offers by their unique identifiers.
func (o *Offer) IsEqual(other *Offer) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// OrderID returns the parent order's identifier.
func (o *Offer) OrderID() kernel.UUID {
	return o.orderID
}

// Deliverer returns the bidding deliverer's identifier.
func (o *Offer) Deliverer() kernel.UUID {
	return o.delivererID
}

// Fee returns the proposed delivery fee.
func (o *Offer) Fee() int64 {
	return o.fee
}

// IsAccepted reports whether this offer won the order.
func (o *Offer) IsAccepted() bool {
	return o.accepted
}

// Accept marks this offer as the winning bid. Rejected if the offer is
// already accepted. The order-level guarantee that sibling offers stay
// unaccepted comes from the order's own status check, performed in the same
// transaction.
func (o *Offer) Accept() error {
	if o.accepted {
		return errs.NewInvalidStateError("accept offer", "accepted")
	}

	o.accepted = true
	return nil
}

// UpdateFee replaces the proposed fee of an open offer. Resubmission by the
// same deliverer on the same order is treated as an update of the existing
// bid, not a new one. Rejected once the offer is accepted.
func (o *Offer) UpdateFee(fee int64) error {
	if o.accepted {
		return errs.NewInvalidStateError("update offer fee", "accepted")
	}
	if err := o.setFee(fee); err != nil {
		return err
	}

	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.orderID = id
	return nil
}

func (o *Offer) setDelivererID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.delivererID = id
	return nil
}

func (o *Offer) setFee(fee int64) error {
	if fee <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("fee",
			fmt.Errorf("%d is not greater than 0", fee))
	}
	o.fee = fee
	return nil
}
