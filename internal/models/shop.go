package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Shop struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Slug     string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string    `gorm:"size:20" json:"phone"`
	Address  string    `gorm:"size:255" json:"address"`
	Timezone string    `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Shop) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ShopStaff links a user to a shop with a staff role
// (owner, admin, manager or provider).
type ShopStaff struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shop_staff_member" json:"shop_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shop_staff_member" json:"user_id"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Role   string    `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShopStaff) TableName() string {
	return "shop_staff"
}

func (s *ShopStaff) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
