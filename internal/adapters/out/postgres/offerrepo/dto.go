// Package offerrepo provides data transfer objects and mapping functions for
// offer persistence. A uniqueness constraint on (order, deliverer) backs the
// one-open-bid-per-deliverer rule at the storage level.
package offerrepo

import (
	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
type OfferDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_order_deliverer"`
	DelivererID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offers_order_deliverer"`
	Fee         int64
	Accepted    bool
	CreatedAt   int64 `gorm:"autoCreateTime"`
	UpdatedAt   int64 `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming convention to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts an offer to its database representation.
func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		DelivererID: aggregate.Deliverer().Bytes(),
		Fee:         aggregate.Fee(),
		Accepted:    aggregate.IsAccepted(),
	}
}

// toDomain reconstructs an offer from a database row via RestoreOffer.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	delivererID, err := kernel.UUIDFromBytes(dto.DelivererID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, orderID, delivererID, dto.Fee, dto.Accepted)
}
