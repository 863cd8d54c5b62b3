package services

import (
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/errs"
)

// Actor is the authenticated caller as seen by the domain: an identity plus
// the role tag resolved by the identity provider.
type Actor struct {
	ID   kernel.UUID
	Role kernel.Role
}

// Action enumerates the capabilities the access policy decides on.
type Action string

const (
	ActionSubmitOffer   Action = "submit offer"
	ActionViewOffers    Action = "view offers"
	ActionAcceptOffer   Action = "accept offer"
	ActionCancelOrder   Action = "cancel order"
	ActionStartDelivery Action = "start delivery"
	ActionCompleteOrder Action = "complete order"
	ActionChat          Action = "chat on order"
)

// AccessPolicy is the single capability check for the order workflow.
// Handlers ask it whether an actor may perform an action on an order instead
// of re-deriving allowed roles per endpoint.
//
// The policy decides rights only; whether the order's current state permits
// the operation is the state machine's concern.
//
// Example:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(actor, services.ActionAcceptOffer, ord); err != nil {
//	    return err // errs.ErrAccessDenied
//	}
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize reports whether the actor may perform the action on the order.
//
// Rules:
//   - submit offer: any deliverer
//   - view offers, accept offer, cancel order: the order's requester,
//     acting as a customer
//   - start delivery, complete order: the order's assigned deliverer
//   - chat: any current participant (requester or assigned deliverer)
//
// Returns an errs.AccessDeniedError when the actor lacks the capability.
func (AccessPolicy) Authorize(actor Actor, action Action, ord *order.Order) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	allowed := false
	switch action {
	case ActionSubmitOffer:
		allowed = actor.Role == kernel.RoleDeliverer
	case ActionViewOffers, ActionAcceptOffer, ActionCancelOrder:
		allowed = actor.Role == kernel.RoleCustomer && ord.IsRequester(actor.ID)
	case ActionStartDelivery, ActionCompleteOrder:
		allowed = actor.Role == kernel.RoleDeliverer && ord.IsAssignedDeliverer(actor.ID)
	case ActionChat:
		allowed = ord.HasParticipant(actor.ID)
	}

	if !allowed {
		return errs.NewAccessDeniedError(string(action), actor.ID.String())
	}

	return nil
}

// AuthorizeTransition maps a target status to the action guarding it and
// authorizes that action. Used by the status-update operation where the
// intended transition arrives from the transport layer.
func (p AccessPolicy) AuthorizeTransition(actor Actor, target order.Status, ord *order.Order) error {
	var action Action
	switch target {
	case order.OnDelivery:
		action = ActionStartDelivery
	case order.Completed:
		action = ActionCompleteOrder
	case order.Cancelled:
		action = ActionCancelOrder
	default:
		// OfferAccepted is reachable only through offer acceptance, never
		// through a direct status update.
		return errs.NewAccessDeniedError("transition to "+target.String(), actor.ID.String())
	}

	return p.Authorize(actor, action, ord)
}
