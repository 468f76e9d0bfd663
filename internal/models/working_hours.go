package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours is one weekday of a provider's schedule in one shop.
// Times are "15:04" in the shop timezone.
type WorkingHours struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_working_hours_day" json:"shop_id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_working_hours_day" json:"provider_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_working_hours_day" json:"weekday"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkingHours) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
