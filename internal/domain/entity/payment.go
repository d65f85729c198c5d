package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment marks a (seller, customer, month, year) billing period as settled.
// Presence of a row means paid; absence means unpaid. Duplicate rows for a
// period carry no extra meaning.
type Payment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SellerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Month      int       `gorm:"not null" json:"month"`
	Year       int       `gorm:"not null" json:"year"`
	Method     string    `gorm:"size:50;default:'Cash'" json:"method"`
	PaidBy     *string   `gorm:"size:255" json:"paid_by,omitempty"`
	PaidAt     time.Time `json:"paid_at"`

	// Relationships
	Seller   Seller   `gorm:"foreignKey:SellerID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
