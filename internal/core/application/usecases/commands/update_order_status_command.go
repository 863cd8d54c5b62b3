package commands

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a participant-driven lifecycle step:
// the assigned deliverer starting or completing the run, or the requester
// cancelling. OfferAccepted is not a valid target here; it is reachable only
// through offer acceptance.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.UUID
	role    kernel.Role
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move the order to the
// target status on behalf of the given actor.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.UUID,
	role kernel.Role,
	target order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		role.Validate(),
		target.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	cmd.role = role
	cmd.target = target
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the user requesting the transition.
func (c UpdateOrderStatusCommand) Actor() kernel.UUID {
	return c.actor
}

// Role returns the actor's role.
func (c UpdateOrderStatusCommand) Role() kernel.Role {
	return c.role
}

// Target returns the requested destination status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}
