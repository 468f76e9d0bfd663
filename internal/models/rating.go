package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Rating struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	ShopID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"shop_id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null" json:"customer_id"`
	ProviderID *uuid.UUID `gorm:"type:uuid" json:"provider_id"`

	Score   int    `gorm:"not null" json:"score"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Rating) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
