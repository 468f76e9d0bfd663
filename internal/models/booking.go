package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ShopID uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_id"`
	Shop   *Shop     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"shop,omitempty"`

	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID *uuid.UUID `gorm:"type:uuid;index" json:"provider_id"`

	AppointmentDate string `gorm:"size:10;not null;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	// JSON text, stored and returned exactly as received
	Services    string  `gorm:"type:text;not null" json:"services"`
	TotalAmount float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	Status        string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CustomerNotes string `gorm:"type:text" json:"customer_notes"`

	Version int `gorm:"not null;default:1" json:"version"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CancelledBy *uuid.UUID `gorm:"type:uuid" json:"cancelled_by"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Version == 0 {
		b.Version = 1
	}
	return nil
}
