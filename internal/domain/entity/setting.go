package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingKeyMilkRate is the seller-scoped per-litre billing rate.
const SettingKeyMilkRate = "milk_rate"

// Setting is a seller-scoped key/value pair. Keys are unique per seller.
type Setting struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SellerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_seller_key" json:"seller_id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex:idx_seller_key" json:"key"`
	Value     string    `gorm:"size:255" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new setting
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
