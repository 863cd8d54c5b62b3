// Package ws implements the realtime channel: one chat room per order,
// carried over websocket connections. Room membership is process-local
// connection state, never persisted; a client that reconnects re-joins its
// rooms and re-fetches history over HTTP.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"titipin/internal/core/domain/model/chat"
	"titipin/internal/core/domain/model/kernel"
)

// MessageEvent is the wire form of a chat message broadcast to a room.
type MessageEvent struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sentAt"`
}

// Hub tracks which connections are joined to which order rooms and fans
// broadcasts out to them. It implements ports.MessagePublisher.
//
// Broadcasts are best-effort: a client whose send buffer is full is dropped
// from the hub rather than allowed to stall everyone else.
type Hub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger.With("component", "ws-hub"),
		rooms:  make(map[string]map[*Client]struct{}),
	}
}

// PublishMessage broadcasts a persisted chat message to every connection in
// the order's room, including the sender's own connections.
func (h *Hub) PublishMessage(orderID kernel.UUID, message *chat.Message) {
	event := MessageEvent{
		Type:       EventReceiveMessage,
		ID:         message.ID().String(),
		OrderID:    message.OrderID().String(),
		SenderID:   message.Sender().String(),
		SenderName: message.SenderName(),
		Text:       message.Text(),
		SentAt:     message.SentAt(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal message event", "error", err)
		return
	}

	h.broadcast(orderID.String(), payload)
}

func (h *Hub) broadcast(room string, payload []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("dropping slow client", "room", room, "user", c.userID.String())
			h.removeClient(c)
			c.close()
		}
	}
}

// join adds the client to the order's room, creating the room on first join.
func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
}

// leave removes the client from the order's room, deleting empty rooms.
func (h *Hub) leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.rooms[room], c)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}

// removeClient removes the client from every room it joined.
func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, clients := range h.rooms {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, room)
		}
	}
}

// roomSize reports the current member count of a room. Used by tests.
func (h *Hub) roomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
