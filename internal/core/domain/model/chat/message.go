package chat

import (
	"errors"
	"time"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/errs"
)

// MessageMaxLength bounds a single chat message body.
const MessageMaxLength = 2000

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// Message is a single chat entry in an order's channel. Messages are
// append-only: once created they are never edited or deleted. The sender must
// be a participant of the order (its requester or assigned deliverer); that
// check belongs to the send operation, which sees the order.
type Message struct {
	id       kernel.UUID
	orderID  kernel.UUID
	senderID kernel.UUID

	// senderName is the display name resolved at send time, denormalized so
	// history reads need no user lookup.
	senderName string

	text string

	// sentAt is server-assigned and orders messages within the channel.
	sentAt time.Time

	isConstructed bool
}

// NewMessage creates a Message with a server-assigned timestamp.
// Returns a validation error for invalid identifiers, an empty sender name,
// or an empty/overlong body.
func NewMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	senderName string,
	text string,
	sentAt time.Time,
) (*Message, error) {
	m := &Message{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setSenderID(senderID),
		m.setSenderName(senderName),
		m.setText(text),
		m.setSentAt(sentAt),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMessage reconstructs a Message from persisted state.
func RestoreMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	senderName string,
	text string,
	sentAt time.Time,
) (*Message, error) {
	return NewMessage(id, orderID, senderID, senderName, text, sentAt)
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}

	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// OrderID returns the order whose channel carries the message.
func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

// Sender returns the sending participant's identifier.
func (m *Message) Sender() kernel.UUID {
	return m.senderID
}

// SenderName returns the display name resolved at send time.
func (m *Message) SenderName() string {
	return m.senderName
}

// Text returns the message body.
func (m *Message) Text() string {
	return m.text
}

// SentAt returns the server-assigned timestamp.
func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.orderID = id
	return nil
}

func (m *Message) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.senderID = id
	return nil
}

func (m *Message) setSenderName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("senderName")
	}
	m.senderName = name
	return nil
}

func (m *Message) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}
	if len(text) > MessageMaxLength {
		return errs.NewValueIsOutOfRangeError("text length", len(text), 1, MessageMaxLength)
	}
	m.text = text
	return nil
}

func (m *Message) setSentAt(sentAt time.Time) error {
	if sentAt.IsZero() {
		return errs.NewValueIsRequiredError("sentAt")
	}
	m.sentAt = sentAt
	return nil
}
