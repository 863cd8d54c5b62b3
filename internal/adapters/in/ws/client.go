package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"titipin/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
)

// Event names exchanged over the socket.
const (
	EventJoinRoom       = "join-room"
	EventLeaveRoom      = "leave-room"
	EventSendMessage    = "send-message"
	EventReceiveMessage = "receive-message"
	EventError          = "error"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 32
)

// clientEvent is what a connected participant sends us.
type clientEvent struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
	Text    string `json:"text,omitempty"`
}

// errorEvent reports a rejected client event back on the same connection.
type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Client is a single websocket connection owned by an authenticated user.
// One user may hold several clients at once (multiple tabs or devices); each
// joins rooms independently and each receives broadcasts.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	handler *Handler
	logger  *slog.Logger

	userID   kernel.UUID
	userName string

	send      chan []byte
	closeOnce sync.Once
}

func newClient(hub *Hub, conn *websocket.Conn, handler *Handler, userID kernel.UUID, userName string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		handler:  handler,
		logger:   handler.logger.With("user", userID.String()),
		userID:   userID,
		userName: userName,
		send:     make(chan []byte, sendBufferSize),
	}
}

// close shuts the underlying connection. The send channel is left open so
// concurrent broadcasts never panic; both pumps exit on the closed connection.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// readPump consumes client events until the connection drops, then removes
// the client from every room it joined.
func (c *Client) readPump() {
	defer func() {
		c.hub.removeClient(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("connection dropped", "error", err)
			}
			return
		}

		var event clientEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.sendError("malformed event")
			continue
		}

		c.handler.dispatch(context.Background(), c, event)
	}
}

// writePump pushes queued broadcasts to the connection and keeps it alive
// with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) sendError(message string) {
	payload, err := json.Marshal(errorEvent{Type: EventError, Message: message})
	if err != nil {
		return
	}

	select {
	case c.send <- payload:
	default:
	}
}
