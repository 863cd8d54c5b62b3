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

// GetMessagesQueryHandler retrieves an order's full chat history in
// chronological order for one of its participants.
type GetMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetMessagesQueryHandler creates a handler for the message history query.
func NewGetMessagesQueryHandler(db *gorm.DB) GetMessagesQueryHandler {
	return GetMessagesQueryHandler{db: db}
}

// Handle executes the query. Fails with errs.ErrObjectNotFound when the order
// does not exist and errs.ErrAccessDenied when the caller is neither the
// requester nor the assigned deliverer.
func (h GetMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetMessagesQuery,
) ([]MessageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizeParticipant(ctx, query); err != nil {
		return nil, err
	}

	messages := make([]MessageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			sender_id,
			sender_name,
			text,
			sent_at
		FROM messages
		WHERE order_id = ?
		ORDER BY sent_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp     MessageResponse
			id       uuid.UUID
			orderID  uuid.UUID
			senderID uuid.UUID
		)

		err = rows.Scan(&id, &orderID, &senderID, &resp.SenderName, &resp.Text, &resp.SentAt)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}

		messages = append(messages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (h GetMessagesQueryHandler) authorizeParticipant(ctx context.Context, query GetMessagesQuery) error {
	var (
		requesterRaw uuid.UUID
		delivererRaw *uuid.UUID
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT requester_id, deliverer_id FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&requesterRaw, &delivererRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return err
	}

	caller := query.UserID().Bytes()
	if requesterRaw == caller {
		return nil
	}
	if delivererRaw != nil && *delivererRaw == caller {
		return nil
	}

	return errs.NewAccessDeniedError("read messages", query.UserID().String())
}
