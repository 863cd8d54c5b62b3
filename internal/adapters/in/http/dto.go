package http

import (
	"time"

	"titipin/internal/core/application/usecases/queries"
	"titipin/internal/core/domain/model/order"
)

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ItemDescription string `json:"itemDescription"`
	Quantity        int    `json:"quantity"`
	Destination     string `json:"destination"`
}

// SubmitOfferRequest is the body of POST /offers.
type SubmitOfferRequest struct {
	OrderID string `json:"orderId"`
	Fee     int64  `json:"fee"`
}

// UpdateOrderStatusRequest is the body of POST /orders/:id/update-status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// IDResponse returns the identifier of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// Order is the wire representation of an order. CreatedAt is omitted on
// responses built from a command result, where only persistence knows it.
type Order struct {
	ID              string  `json:"id"`
	RequesterID     string  `json:"requesterId"`
	DelivererID     *string `json:"delivererId"`
	ItemDescription string  `json:"itemDescription"`
	Quantity        int     `json:"quantity"`
	Destination     string  `json:"destination"`
	FinalFee        *int64  `json:"finalFee"`
	Status          string  `json:"status"`
	CreatedAt       int64   `json:"createdAt,omitempty"`
}

// Offer is the wire representation of a deliverer's bid.
type Offer struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	DelivererID string `json:"delivererId"`
	Fee         int64  `json:"fee"`
	Accepted    bool   `json:"accepted"`
	CreatedAt   int64  `json:"createdAt"`
}

// Message is the wire representation of a chat message.
type Message struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sentAt"`
}

// ChatSummary is one entry of the caller's chat list.
type ChatSummary struct {
	OrderID         string `json:"orderId"`
	CounterpartID   string `json:"counterpartId"`
	ItemDescription string `json:"itemDescription"`
	Status          string `json:"status"`
	CreatedAt       int64  `json:"createdAt"`
}

func orderFromDomain(ord *order.Order) Order {
	response := Order{
		ID:              ord.ID().String(),
		RequesterID:     ord.Requester().String(),
		ItemDescription: ord.ItemDescription(),
		Quantity:        ord.Quantity(),
		Destination:     ord.Destination().String(),
		FinalFee:        ord.FinalFee(),
		Status:          ord.Status().String(),
	}
	if deliverer := ord.Deliverer(); deliverer != nil {
		id := deliverer.String()
		response.DelivererID = &id
	}
	return response
}

func orderFromQuery(row queries.OrderResponse) Order {
	response := Order{
		ID:              row.ID.String(),
		RequesterID:     row.RequesterID.String(),
		ItemDescription: row.ItemDescription,
		Quantity:        row.Quantity,
		Destination:     row.Destination,
		FinalFee:        row.FinalFee,
		Status:          row.Status.String(),
		CreatedAt:       row.CreatedAt,
	}
	if row.DelivererID != nil {
		id := row.DelivererID.String()
		response.DelivererID = &id
	}
	return response
}

func ordersFromQuery(rows []queries.OrderResponse) []Order {
	response := make([]Order, len(rows))
	for i, row := range rows {
		response[i] = orderFromQuery(row)
	}
	return response
}

func offersFromQuery(rows []queries.OfferResponse) []Offer {
	response := make([]Offer, len(rows))
	for i, row := range rows {
		response[i] = Offer{
			ID:          row.ID.String(),
			OrderID:     row.OrderID.String(),
			DelivererID: row.DelivererID.String(),
			Fee:         row.Fee,
			Accepted:    row.Accepted,
			CreatedAt:   row.CreatedAt,
		}
	}
	return response
}

func messagesFromQuery(rows []queries.MessageResponse) []Message {
	response := make([]Message, len(rows))
	for i, row := range rows {
		response[i] = Message{
			ID:         row.ID.String(),
			OrderID:    row.OrderID.String(),
			SenderID:   row.SenderID.String(),
			SenderName: row.SenderName,
			Text:       row.Text,
			SentAt:     row.SentAt,
		}
	}
	return response
}

func chatSummariesFromQuery(rows []queries.ChatSummaryResponse) []ChatSummary {
	response := make([]ChatSummary, len(rows))
	for i, row := range rows {
		response[i] = ChatSummary{
			OrderID:         row.OrderID.String(),
			CounterpartID:   row.CounterpartID.String(),
			ItemDescription: row.ItemDescription,
			Status:          row.Status.String(),
			CreatedAt:       row.CreatedAt,
		}
	}
	return response
}
