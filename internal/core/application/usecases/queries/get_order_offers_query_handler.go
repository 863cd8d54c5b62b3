package queries

import (
	"context"
	"database/sql"
	"errors"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderOffersQueryHandler retrieves an order's bids for its requester,
// cheapest first so the best deal tops the list.
type GetOrderOffersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderOffersQueryHandler creates a handler for the order offers query.
func NewGetOrderOffersQueryHandler(db *gorm.DB) GetOrderOffersQueryHandler {
	return GetOrderOffersQueryHandler{db: db}
}

// Handle executes the query. Fails with errs.ErrObjectNotFound when the order
// does not exist and errs.ErrAccessDenied when the caller is not its
// requester. Offers are returned ascending by fee, ties broken by submission
// time.
func (h GetOrderOffersQueryHandler) Handle(
	ctx context.Context,
	query GetOrderOffersQuery,
) ([]OfferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ownerRaw uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT requester_id FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&ownerRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	owner, err := kernel.UUIDFromBytes(ownerRaw[:])
	if err != nil {
		return nil, err
	}
	if !owner.IsEqual(query.RequesterID()) {
		return nil, errs.NewAccessDeniedError("view offers", query.RequesterID().String())
	}

	offers := make([]OfferResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			deliverer_id,
			fee,
			accepted,
			created_at
		FROM offers
		WHERE order_id = ?
		ORDER BY fee, created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        OfferResponse
			id          uuid.UUID
			orderID     uuid.UUID
			delivererID uuid.UUID
		)

		err = rows.Scan(&id, &orderID, &delivererID, &resp.Fee, &resp.Accepted, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.DelivererID, err = kernel.UUIDFromBytes(delivererID[:]); err != nil {
			return nil, err
		}

		offers = append(offers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
