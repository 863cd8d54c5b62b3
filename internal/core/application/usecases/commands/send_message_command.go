package commands

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/errs"
	"titipin/internal/pkg/guard"
)

var (
	ErrSendMessageCommandIsNotConstructed = errors.New(
		"SendMessageCommand must be created via NewSendMessageCommand constructor",
	)
)

// SendMessageCommand represents a participant posting to an order's chat
// channel. The sender's display name travels with the command so the message
// can be denormalized without a user lookup.
type SendMessageCommand struct { //nolint:recvcheck //using for validation
	messageID  kernel.UUID
	orderID    kernel.UUID
	senderID   kernel.UUID
	senderName string
	text       string

	guard guard.ConstructorGuard
}

// NewSendMessageCommand creates a command to post a message to the order's
// channel. The timestamp is assigned by the handler, not the caller.
func NewSendMessageCommand(
	messageID kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	senderName string,
	text string,
) (SendMessageCommand, error) {
	cmd := SendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		messageID.Validate(),
		orderID.Validate(),
		senderID.Validate(),
	); err != nil {
		return SendMessageCommand{}, err
	}

	if senderName == "" {
		return SendMessageCommand{}, errs.NewValueIsRequiredError("senderName")
	}
	if text == "" {
		return SendMessageCommand{}, errs.NewValueIsRequiredError("text")
	}

	cmd.messageID = messageID
	cmd.orderID = orderID
	cmd.senderID = senderID
	cmd.senderName = senderName
	cmd.text = text
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

// MessageID returns the identifier for the new message.
func (c SendMessageCommand) MessageID() kernel.UUID {
	return c.messageID
}

// OrderID returns the order whose channel receives the message.
func (c SendMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderID returns the posting participant.
func (c SendMessageCommand) SenderID() kernel.UUID {
	return c.senderID
}

// SenderName returns the sender's display name.
func (c SendMessageCommand) SenderName() string {
	return c.senderName
}

// Text returns the message body.
func (c SendMessageCommand) Text() string {
	return c.text
}
