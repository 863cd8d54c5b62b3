package queries

import (
	"context"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetChatListQueryHandler retrieves the user's active chat channels. A
// channel exists once a deliverer is assigned, so the query matches only
// orders with a non-null deliverer.
type GetChatListQueryHandler struct {
	db *gorm.DB
}

// NewGetChatListQueryHandler creates a handler for the chat list query.
func NewGetChatListQueryHandler(db *gorm.DB) GetChatListQueryHandler {
	return GetChatListQueryHandler{db: db}
}

// Handle executes the query, newest channel first. The counterpart is the
// assigned deliverer for a customer and the requester for a deliverer.
func (h GetChatListQueryHandler) Handle(
	ctx context.Context,
	query GetChatListQuery,
) ([]ChatSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	match := "deliverer_id = ?"
	if query.Role() == kernel.RoleCustomer {
		match = "requester_id = ?"
	}

	chats := make([]ChatSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			deliverer_id,
			item_description,
			status,
			created_at
		FROM orders
		WHERE `+match+` AND deliverer_id IS NOT NULL
		ORDER BY created_at DESC, id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        ChatSummaryResponse
			id          uuid.UUID
			requesterID uuid.UUID
			delivererID uuid.UUID
			status      int
		)

		err = rows.Scan(&id, &requesterID, &delivererID, &resp.ItemDescription, &status, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		counterpartRaw := delivererID
		if query.Role() != kernel.RoleCustomer {
			counterpartRaw = requesterID
		}
		if resp.CounterpartID, err = kernel.UUIDFromBytes(counterpartRaw[:]); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status)
		chats = append(chats, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return chats, nil
}
