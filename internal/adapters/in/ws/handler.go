package ws

import (
	"context"
	"log/slog"
	"net/http"

	"titipin/internal/core/application/usecases/commands"
	"titipin/internal/core/domain/model/chat"
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// messageSender posts a chat message through the application layer so the
// same persistence and broadcast path serves both transports.
type messageSender interface {
	Handle(ctx context.Context, cmd commands.SendMessageCommand) (*chat.Message, error)
}

// Handler upgrades authenticated requests to websocket connections and routes
// client events: join-room and leave-room manage room membership, send-message
// goes through the send message use case (which persists first, then the hub
// broadcasts the stored message back to the room).
type Handler struct {
	hub         *Hub
	uowFactory  ports.UnitOfWorkFactory
	sendMessage messageSender
	logger      *slog.Logger
	upgrader    websocket.Upgrader
}

// NewHandler wires the realtime endpoint.
func NewHandler(
	hub *Hub,
	uowFactory ports.UnitOfWorkFactory,
	sendMessage messageSender,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		hub:         hub,
		uowFactory:  uowFactory,
		sendMessage: sendMessage,
		logger:      logger.With("component", "ws-handler"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Serve upgrades the request and runs the connection's pumps. The caller has
// already authenticated the user; authorization happens per room on join.
func (h *Handler) Serve(c echo.Context, userID kernel.UUID, userName string) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "websocket upgrade failed")
	}

	client := newClient(h.hub, conn, h, userID, userName)
	go client.writePump()
	client.readPump()
	return nil
}

func (h *Handler) dispatch(ctx context.Context, client *Client, event clientEvent) {
	switch event.Type {
	case EventJoinRoom:
		h.handleJoin(ctx, client, event)
	case EventLeaveRoom:
		client.hub.leave(client, event.OrderID)
	case EventSendMessage:
		h.handleSendMessage(ctx, client, event)
	default:
		client.sendError("unknown event type")
	}
}

// handleJoin admits the client to the order's room only if the user is a
// participant of that order. Non-participants get an error event, not a
// silent no-op, so misbehaving clients are debuggable.
func (h *Handler) handleJoin(ctx context.Context, client *Client, event clientEvent) {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		client.sendError("invalid order id")
		return
	}

	ord, err := h.uowFactory.Create().OrderRepository().Get(ctx, orderID)
	if err != nil {
		client.sendError("order not found")
		return
	}

	if !ord.HasParticipant(client.userID) {
		client.sendError("not a participant of this order")
		return
	}

	h.hub.join(client, event.OrderID)
}

func (h *Handler) handleSendMessage(ctx context.Context, client *Client, event clientEvent) {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		client.sendError("invalid order id")
		return
	}

	cmd, err := commands.NewSendMessageCommand(
		kernel.NewUUID(), orderID, client.userID, client.userName, event.Text)
	if err != nil {
		client.sendError("invalid message")
		return
	}

	if _, err := h.sendMessage.Handle(ctx, cmd); err != nil {
		h.logger.Warn("send message rejected", "order", event.OrderID, "error", err)
		client.sendError("message rejected")
		return
	}
}
