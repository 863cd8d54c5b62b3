// Package messagerepo provides data transfer objects and mapping functions
// for chat message persistence. Messages are append-only rows keyed by the
// order whose channel carries them.
package messagerepo

import (
	"time"

	"titipin/internal/core/domain/model/chat"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting chat messages.
type MessageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	SenderID   uuid.UUID `gorm:"type:uuid"`
	SenderName string
	Text       string    `gorm:"type:varchar(2000)"`
	SentAt     time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "messages".
func (MessageDTO) TableName() string {
	return "messages"
}

// fromDomain converts a message to its database representation.
func fromDomain(message *chat.Message) MessageDTO {
	return MessageDTO{
		ID:         message.ID().Bytes(),
		OrderID:    message.OrderID().Bytes(),
		SenderID:   message.Sender().Bytes(),
		SenderName: message.SenderName(),
		Text:       message.Text(),
		SentAt:     message.SentAt(),
	}
}
