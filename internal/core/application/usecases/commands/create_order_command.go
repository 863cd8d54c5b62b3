package commands

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a customer's request to place a new delivery
// order. The order starts collecting offers immediately after creation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, requesterID, "Nasi Goreng x2", 2, destination)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	requesterID     kernel.UUID
	itemDescription string
	quantity        int
	destination     kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Identifier and destination validity are checked here; item description and
// quantity rules are enforced again by the Order constructor.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	requesterID kernel.UUID,
	itemDescription string,
	quantity int,
	destination kernel.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
		destination.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.requesterID = requesterID
	cmd.itemDescription = itemDescription
	cmd.quantity = quantity
	cmd.destination = destination
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the customer placing the order.
func (c CreateOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// ItemDescription returns what should be delivered.
func (c CreateOrderCommand) ItemDescription() string {
	return c.itemDescription
}

// Quantity returns the number of items requested.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() kernel.Address {
	return c.destination
}
