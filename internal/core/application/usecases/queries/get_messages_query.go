package queries

import (
	"errors"
	"time"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/guard"
)

var (
	ErrGetMessagesQueryIsNotConstructed = errors.New(
		"GetMessagesQuery must be created via NewGetMessagesQuery constructor",
	)
)

// GetMessagesQuery retrieves the chat history of an order's channel. Only the
// order's participants (requester and assigned deliverer) may read it.
type GetMessagesQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMessagesQuery creates a query for the order's message history on
// behalf of the given user.
func NewGetMessagesQuery(orderID, userID kernel.UUID) (GetMessagesQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
	); err != nil {
		return GetMessagesQuery{}, err
	}

	return GetMessagesQuery{
		orderID: orderID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessagesQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetMessagesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the caller, who must be a participant of the order.
func (q GetMessagesQuery) UserID() kernel.UUID {
	return q.userID
}

// MessageResponse is the read model for a single chat message.
type MessageResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	SenderID   kernel.UUID
	SenderName string
	Text       string
	SentAt     time.Time
}
