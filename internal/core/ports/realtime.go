package ports

import (
	"titipin/internal/core/domain/model/chat"
	"titipin/internal/core/domain/model/kernel"
)

// MessagePublisher relays a persisted chat message to every connection
// currently joined to the order's channel (broadcast-to-room semantics,
// including the sender's own other connections).
//
// Publishing is best-effort: room membership is process-local connection
// state, never the source of truth. A participant who missed a broadcast
// re-fetches history on reconnect.
type MessagePublisher interface {
	PublishMessage(orderID kernel.UUID, message *chat.Message)
}
