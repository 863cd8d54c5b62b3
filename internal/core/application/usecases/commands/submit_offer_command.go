package commands

import (
	"errors"
	"fmt"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/errs"
	"titipin/internal/pkg/guard"
)

var (
	ErrSubmitOfferCommandIsNotConstructed = errors.New(
		"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
	)
)

// SubmitOfferCommand represents a deliverer's bid on a pending order.
// Resubmission by the same deliverer updates the existing bid in place
// instead of creating a duplicate.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	offerID     kernel.UUID
	orderID     kernel.UUID
	delivererID kernel.UUID
	fee         int64

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command to bid on an order. The offerID is
// used only when the bid is new; a resubmission keeps the original offer's
// identity. The fee must be positive.
func NewSubmitOfferCommand(
	offerID kernel.UUID,
	orderID kernel.UUID,
	delivererID kernel.UUID,
	fee int64,
) (SubmitOfferCommand, error) {
	cmd := SubmitOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		offerID.Validate(),
		orderID.Validate(),
		delivererID.Validate(),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	if fee <= 0 {
		return SubmitOfferCommand{}, errs.NewValueIsInvalidErrorWithCause("fee",
			fmt.Errorf("%d is not greater than 0", fee))
	}

	cmd.offerID = offerID
	cmd.orderID = orderID
	cmd.delivererID = delivererID
	cmd.fee = fee
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// OfferID returns the identifier for the offer if the bid is new.
func (c SubmitOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// OrderID returns the order being bid on.
func (c SubmitOfferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DelivererID returns the bidding deliverer.
func (c SubmitOfferCommand) DelivererID() kernel.UUID {
	return c.delivererID
}

// Fee returns the proposed delivery fee.
func (c SubmitOfferCommand) Fee() int64 {
	return c.fee
}
