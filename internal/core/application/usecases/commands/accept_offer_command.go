package commands

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/guard"
)

var (
	ErrAcceptOfferCommandIsNotConstructed = errors.New(
		"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
	)
)

// AcceptOfferCommand represents the requester's choice of a winning bid.
// Acceptance binds the order to the offer's deliverer and fixes the final fee.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	offerID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept the given offer on behalf
// of the given requester.
func NewAcceptOfferCommand(offerID kernel.UUID, requesterID kernel.UUID) (AcceptOfferCommand, error) {
	cmd := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		offerID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	cmd.offerID = offerID
	cmd.requesterID = requesterID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OfferID returns the offer chosen by the requester.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// RequesterID returns the customer accepting the offer.
func (c AcceptOfferCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
