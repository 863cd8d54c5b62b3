package queries

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/guard"
)

var (
	ErrGetMyOrdersQueryIsNotConstructed = errors.New(
		"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
	)
)

// GetMyOrdersQuery retrieves the orders a user is involved in: placed orders
// for a customer, assigned runs for a deliverer.
type GetMyOrdersQuery struct {
	userID kernel.UUID
	role   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for the user's orders. The role decides
// which side of the order the user is matched on.
func NewGetMyOrdersQuery(userID kernel.UUID, role kernel.Role) (GetMyOrdersQuery, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// UserID returns the user whose orders are requested.
func (q GetMyOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the role the user is acting as.
func (q GetMyOrdersQuery) Role() kernel.Role {
	return q.role
}
