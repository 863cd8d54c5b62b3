package order

import (
	"errors"
	"fmt"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrFinalFeeAlreadySet is returned when acceptance would overwrite an
	// already fixed fee. The final fee is set exactly once.
	ErrFinalFeeAlreadySet = errors.New("final fee is already set")
)

// Order represents a delivery request made by a customer. It is the aggregate
// root that owns the order lifecycle from creation through offer acceptance to
// completion.
//
// Order maintains these invariants:
//   - Must have valid order and requester identifiers
//   - Item description must be non-empty and quantity positive
//   - A deliverer is assigned iff status is OfferAccepted, OnDelivery, or Completed
//   - The final fee is set exactly once, at offer acceptance, and is immutable afterward
//   - Status transitions follow the bidding workflow (see Status)
//
// The struct uses private fields to ensure encapsulation; instances can only
// be created through NewOrder (fresh orders) or RestoreOrder (persistence).
type Order struct {
	id kernel.UUID

	// requesterID is the customer who placed the order.
	requesterID kernel.UUID

	// delivererID is the assigned deliverer (nil until an offer is accepted).
	delivererID *kernel.UUID

	itemDescription string
	quantity        int
	destination     kernel.Address

	// finalFee is the accepted offer's fee (nil until acceptance).
	finalFee *int64

	status Status

	isConstructed bool
}

// NewOrder creates a new Order in WaitingForOffers status. This is the only
// way to create a fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id: unique identifier for the order
//   - requesterID: the customer placing the order
//   - itemDescription: what should be bought/delivered (must be non-empty)
//   - quantity: number of items (must be positive)
//   - destination: validated delivery address
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	itemDescription string,
	quantity int,
	destination kernel.Address,
) (*Order, error) {
	o := &Order{
		status:        WaitingForOffers,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRequesterID(requesterID),
		o.setItemDescription(itemDescription),
		o.setQuantity(quantity),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. In addition to the
// field validations performed by NewOrder it checks cross-field consistency:
// the deliverer assignment must match the status, and the final fee must be
// present iff a deliverer is assigned.
func RestoreOrder(
	id kernel.UUID,
	requesterID kernel.UUID,
	itemDescription string,
	quantity int,
	destination kernel.Address,
	status Status,
	delivererID *kernel.UUID,
	finalFee *int64,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDeliverer(delivererID != nil); err != nil {
		return nil, err
	}
	if delivererID != nil {
		if err := delivererID.Validate(); err != nil {
			return nil, err
		}
	}
	if (delivererID != nil) != (finalFee != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("finalFee",
			errors.New("final fee must be set exactly when a deliverer is assigned"))
	}

	o, err := NewOrder(id, requesterID, itemDescription, quantity, destination)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.delivererID = delivererID
	o.finalFee = finalFee
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Requester returns the customer who placed the order.
func (o *Order) Requester() kernel.UUID {
	return o.requesterID
}

// Deliverer returns the assigned deliverer's ID, or nil if unassigned.
func (o *Order) Deliverer() *kernel.UUID {
	return o.delivererID
}

// ItemDescription returns what the order asks to be delivered.
func (o *Order) ItemDescription() string {
	return o.itemDescription
}

// Quantity returns the number of items requested.
func (o *Order) Quantity() int {
	return o.quantity
}

// Destination returns the delivery address.
func (o *Order) Destination() kernel.Address {
	return o.destination
}

// FinalFee returns the fee fixed at offer acceptance, or nil before it.
func (o *Order) FinalFee() *int64 {
	return o.finalFee
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsRequester reports whether the given user placed this order.
func (o *Order) IsRequester(userID kernel.UUID) bool {
	return o.requesterID.IsEqual(userID)
}

// IsAssignedDeliverer reports whether the given user is the deliverer bound
// to this order. Always false before acceptance.
func (o *Order) IsAssignedDeliverer(userID kernel.UUID) bool {
	return o.delivererID != nil && o.delivererID.IsEqual(userID)
}

// HasParticipant reports whether the given user is the requester or the
// assigned deliverer. Used to gate the order's chat channel.
func (o *Order) HasParticipant(userID kernel.UUID) bool {
	return o.IsRequester(userID) || o.IsAssignedDeliverer(userID)
}

// AcceptOffer binds the order to the winning deliverer and fixes the final
// fee. Only legal while the order is WaitingForOffers, which guarantees at
// most one offer is ever accepted.
//
// Note that the in-memory transition is not the race guard by itself: the
// repository persists the resulting state with a conditional update on the
// previous status, so the losing side of two concurrent acceptances fails.
func (o *Order) AcceptOffer(delivererID kernel.UUID, fee int64) error {
	if err := delivererID.Validate(); err != nil {
		return err
	}
	if fee <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("fee",
			fmt.Errorf("%d is not greater than 0", fee))
	}
	newStatus, err := o.status.AcceptOffer()
	if err != nil {
		return err
	}

	if o.finalFee != nil {
		return ErrFinalFeeAlreadySet
	}

	o.status = newStatus
	o.delivererID = &delivererID
	o.finalFee = &fee
	return nil
}

// StartDelivery marks that the assigned deliverer began the run.
// Only legal from OfferAccepted.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered. Only legal from OnDelivery.
// Completed is terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Legal from WaitingForOffers, and from
// OfferAccepted as long as the run has not started. Cancellation releases the
// assignment and the fixed fee.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.delivererID = nil
	o.finalFee = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.requesterID = id
	return nil
}

func (o *Order) setItemDescription(desc string) error {
	if desc == "" {
		return errs.NewValueIsRequiredError("itemDescription")
	}
	o.itemDescription = desc
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}
