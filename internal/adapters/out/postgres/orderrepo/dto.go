// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by requester, deliverer, and status to serve the marketplace reads
// (available orders, my orders, chat list).
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequesterID     uuid.UUID  `gorm:"type:uuid;index"`
	DelivererID     *uuid.UUID `gorm:"type:uuid;index"`
	ItemDescription string
	Quantity        int
	Destination     string `gorm:"type:varchar(500)"`
	FinalFee        *int64
	Status          int   `gorm:"index"`
	CreatedAt       int64 `gorm:"autoCreateTime"`
	UpdatedAt       int64 `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var delivererID *uuid.UUID
	if id := aggregate.Deliverer(); id != nil {
		raw := id.Bytes()
		delivererID = &raw
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		RequesterID:     aggregate.Requester().Bytes(),
		DelivererID:     delivererID,
		ItemDescription: aggregate.ItemDescription(),
		Quantity:        aggregate.Quantity(),
		Destination:     aggregate.Destination().String(),
		FinalFee:        aggregate.FinalFee(),
		Status:          int(aggregate.Status()),
	}
}

// toDomain reconstructs an order aggregate from a database row, including the
// deliverer assignment and fixed fee, via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	var delivererID *kernel.UUID
	if dto.DelivererID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DelivererID)[:])
		if dErr != nil {
			return nil, dErr
		}

		delivererID = &dID
	}

	destination, err := kernel.NewAddress(dto.Destination)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		requesterID,
		dto.ItemDescription,
		dto.Quantity,
		destination,
		order.Status(dto.Status),
		delivererID,
		dto.FinalFee,
	)
}
