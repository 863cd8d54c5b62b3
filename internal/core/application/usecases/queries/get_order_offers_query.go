package queries

import (
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/guard"
)

var (
	ErrGetOrderOffersQueryIsNotConstructed = errors.New(
		"GetOrderOffersQuery must be created via NewGetOrderOffersQuery constructor",
	)
)

// GetOrderOffersQuery retrieves the bids on an order. Only the order's
// requester may see them; deliverers do not see competing fees.
type GetOrderOffersQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderOffersQuery creates a query for the offers on the given order,
// on behalf of the given requester.
func NewGetOrderOffersQuery(orderID, requesterID kernel.UUID) (GetOrderOffersQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return GetOrderOffersQuery{}, err
	}

	return GetOrderOffersQuery{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderOffersQueryIsNotConstructed)
}

// OrderID returns the order whose offers are requested.
func (q GetOrderOffersQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the caller, who must own the order.
func (q GetOrderOffersQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// OfferResponse is the read model for a single bid.
type OfferResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	DelivererID kernel.UUID
	Fee         int64
	Accepted    bool
	CreatedAt   int64
}
