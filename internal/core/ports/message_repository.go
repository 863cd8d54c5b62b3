package ports

import (
	"context"

	"titipin/internal/core/domain/model/chat"
)

// MessageRepository defines the persistence contract for chat messages.
// Messages are append-only; history reads go through the query side.
type MessageRepository interface {
	// Add persists a new chat message.
	Add(ctx context.Context, message *chat.Message) error
}
