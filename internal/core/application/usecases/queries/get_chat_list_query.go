package queries

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"
	"titipin/internal/pkg/guard"
)

var (
	ErrGetChatListQueryIsNotConstructed = errors.New(
		"GetChatListQuery must be created via NewGetChatListQuery constructor",
	)
)

// GetChatListQuery retrieves the orders on which the user currently has a
// chat channel: orders with an assignment where the user is the requester or
// the assigned deliverer.
type GetChatListQuery struct {
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetChatListQuery creates a query for the user's active chat channels.
func NewGetChatListQuery(userID kernel.UUID, role kernel.Role) (GetChatListQuery, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return GetChatListQuery{}, err
	}

	return GetChatListQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetChatListQuery) Validate() error {
	return q.guard.Validate(ErrGetChatListQueryIsNotConstructed)
}

// UserID returns the user whose chat list is requested.
func (q GetChatListQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the role the user is acting as.
func (q GetChatListQuery) Role() kernel.Role {
	return q.role
}

// ChatSummaryResponse is one entry of the chat list: the order carrying the
// channel and the identity of the user's counterpart on it.
type ChatSummaryResponse struct {
	OrderID         kernel.UUID
	CounterpartID   kernel.UUID
	ItemDescription string
	Status          order.Status
	CreatedAt       int64
}
