package ws

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"titipin/internal/core/domain/model/chat"
	"titipin/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, buffer int) *Client {
	return &Client{
		hub:    hub,
		logger: slog.Default(),
		userID: kernel.NewUUID(),
		send:   make(chan []byte, buffer),
	}
}

func mustMessage(t *testing.T, orderID kernel.UUID, text string) *chat.Message {
	t.Helper()
	message, err := chat.NewMessage(
		kernel.NewUUID(), orderID, kernel.NewUUID(), "Budi", text, time.Now().UTC())
	require.NoError(t, err)
	return message
}

func Test_Hub_PublishMessage_ReachesEveryRoomMember(t *testing.T) {
	// Arrange
	hub := NewHub(slog.Default())
	orderID := kernel.NewUUID()
	first := newTestClient(hub, 1)
	second := newTestClient(hub, 1)
	hub.join(first, orderID.String())
	hub.join(second, orderID.String())

	// Act
	hub.PublishMessage(orderID, mustMessage(t, orderID, "Otw"))

	// Assert
	for _, client := range []*Client{first, second} {
		select {
		case payload := <-client.send:
			var event MessageEvent
			require.NoError(t, json.Unmarshal(payload, &event))
			assert.Equal(t, EventReceiveMessage, event.Type)
			assert.Equal(t, orderID.String(), event.OrderID)
			assert.Equal(t, "Otw", event.Text)
			assert.Equal(t, "Budi", event.SenderName)
		default:
			t.Fatal("expected a broadcast payload")
		}
	}
}

func Test_Hub_PublishMessage_SkipsOtherRooms(t *testing.T) {
	// Arrange
	hub := NewHub(slog.Default())
	orderID := kernel.NewUUID()
	member := newTestClient(hub, 1)
	bystander := newTestClient(hub, 1)
	hub.join(member, orderID.String())
	hub.join(bystander, kernel.NewUUID().String())

	// Act
	hub.PublishMessage(orderID, mustMessage(t, orderID, "Otw"))

	// Assert
	assert.Len(t, member.send, 1)
	assert.Empty(t, bystander.send)
}

func Test_Hub_Leave_StopsDelivery(t *testing.T) {
	// Arrange
	hub := NewHub(slog.Default())
	orderID := kernel.NewUUID()
	client := newTestClient(hub, 1)
	hub.join(client, orderID.String())
	hub.leave(client, orderID.String())

	// Act
	hub.PublishMessage(orderID, mustMessage(t, orderID, "Otw"))

	// Assert
	assert.Empty(t, client.send)
	assert.Zero(t, hub.roomSize(orderID.String()))
}

func Test_Hub_SlowClientIsDropped(t *testing.T) {
	// Arrange
	hub := NewHub(slog.Default())
	orderID := kernel.NewUUID()
	slow := newTestClient(hub, 1)
	hub.join(slow, orderID.String())
	slow.send <- []byte("backlog") // fills the buffer

	// Act
	hub.PublishMessage(orderID, mustMessage(t, orderID, "Otw"))

	// Assert
	assert.Zero(t, hub.roomSize(orderID.String()))
}

func Test_Hub_RemoveClient_ClearsAllRooms(t *testing.T) {
	// Arrange
	hub := NewHub(slog.Default())
	firstRoom := kernel.NewUUID().String()
	secondRoom := kernel.NewUUID().String()
	client := newTestClient(hub, 1)
	hub.join(client, firstRoom)
	hub.join(client, secondRoom)

	// Act
	hub.removeClient(client)

	// Assert
	assert.Zero(t, hub.roomSize(firstRoom))
	assert.Zero(t, hub.roomSize(secondRoom))
}
