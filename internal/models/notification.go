package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index" json:"recipient_id"`
	ShopID      uuid.UUID  `gorm:"type:uuid;not null" json:"shop_id"`
	BookingID   *uuid.UUID `gorm:"type:uuid" json:"booking_id"`

	Kind  string `gorm:"size:50;not null" json:"kind"`
	Title string `gorm:"size:120;not null" json:"title"`
	Body  string `gorm:"size:500" json:"body"`

	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
