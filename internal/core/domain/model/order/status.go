package order

import (
	"fmt"

	"titipin/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders always
// follow the bidding workflow:
//
//	WaitingForOffers ──> OfferAccepted ──> OnDelivery ──> Completed
//	       │                   │
//	       └───────────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates transitions and provides string
// representations for persistence and transport.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// WaitingForOffers is the initial status: the order is visible to
	// deliverers and collects fee offers.
	WaitingForOffers

	// OfferAccepted indicates the requester accepted one offer; the order is
	// bound to a deliverer and the final fee is fixed.
	OfferAccepted

	// OnDelivery indicates the assigned deliverer has started the run.
	OnDelivery

	// Completed indicates the delivery finished. Terminal.
	Completed

	// Cancelled indicates the requester withdrew the order before delivery
	// started. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		WaitingForOffers: "WAITING_FOR_OFFERS",
		OfferAccepted:    "OFFER_ACCEPTED",
		OnDelivery:       "ON_DELIVERY",
		Completed:        "COMPLETED",
		Cancelled:        "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		WaitingForOffers: "WAITING_FOR_OFFERS",
		OfferAccepted:    "OFFER_ACCEPTED",
		OnDelivery:       "ON_DELIVERY",
		Completed:        "COMPLETED",
		Cancelled:        "CANCELLED",
	}
}

// StatusFromString parses the transport representation of a status
// (e.g. "ON_DELIVERY"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the transport name of the status, e.g. "WAITING_FOR_OFFERS".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHaveDeliverer validates consistency between order status and
// deliverer assignment.
//
// Business rules:
//   - WaitingForOffers and Cancelled orders must not have a deliverer
//   - OfferAccepted, OnDelivery, and Completed orders must have a deliverer
//
// A cancelled order never carries its former assignment: cancellation is only
// permitted before pickup and releases the deliverer.
func (s Status) ValidateCanHaveDeliverer(deliverer bool) error {
	requires := s == OfferAccepted || s == OnDelivery || s == Completed

	if deliverer && !requires {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a deliverer", s))
	}

	if !deliverer && requires {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no deliverer", s))
	}

	return nil
}

// AcceptOffer transitions the status to OfferAccepted.
//
// Valid transition: WaitingForOffers -> OfferAccepted. Any other source state
// (including OfferAccepted itself) is rejected, which guarantees at most one
// offer can ever be accepted per order.
func (s Status) AcceptOffer() (Status, error) {
	if s != WaitingForOffers {
		return Unknown, errs.NewInvalidStateError("accept offer", s.String())
	}

	return OfferAccepted, nil
}

// StartDelivery transitions the status to OnDelivery.
//
// Valid transition: OfferAccepted -> OnDelivery. Re-applying the transition to
// an order already OnDelivery is rejected, so client retries after a dropped
// response surface as an error instead of silently succeeding.
func (s Status) StartDelivery() (Status, error) {
	if s != OfferAccepted {
		return Unknown, errs.NewInvalidStateError("start delivery", s.String())
	}

	return OnDelivery, nil
}

// Complete transitions the status to Completed.
//
// Valid transition: OnDelivery -> Completed. Completed is terminal.
func (s Status) Complete() (Status, error) {
	if s != OnDelivery {
		return Unknown, errs.NewInvalidStateError("complete order", s.String())
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions: WaitingForOffers -> Cancelled and, as a pre-pickup
// policy, OfferAccepted -> Cancelled. Once the run started (OnDelivery) the
// order can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != WaitingForOffers && s != OfferAccepted {
		return Unknown, errs.NewInvalidStateError("cancel order", s.String())
	}

	return Cancelled, nil
}

// TransitionTo transitions the status to target using the matching transition
// rule. Used by the status-update operation where the target state arrives
// from the transport layer.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case OfferAccepted:
		return s.AcceptOffer()
	case OnDelivery:
		return s.StartDelivery()
	case Completed:
		return s.Complete()
	case Cancelled:
		return s.Cancel()
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid target status", target))
	}
}
