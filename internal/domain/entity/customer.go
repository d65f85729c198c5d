package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a milk-delivery recipient belonging to exactly one
// seller. Code is the seller-scoped human-readable identifier (e.g. "C101"),
// unique within a seller but not globally.
//
// Payments is a denormalized month-code ("2025-11") to paid mirror of the
// Payment collection. It is a read optimization only and may lag; the Payment
// rows are authoritative.
type Customer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"internal_id"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_seller_code" json:"seller_id"`
	Code          string          `gorm:"size:50;not null;uniqueIndex:idx_seller_code" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	DefaultLitres float64         `gorm:"default:1" json:"default_litres"`
	Phone         *string         `gorm:"size:50" json:"phone,omitempty"`
	Photo         *string         `gorm:"size:255" json:"photo,omitempty"`
	Payments      map[string]bool `gorm:"type:jsonb;serializer:json" json:"payments"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Seller Seller `gorm:"foreignKey:SellerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Payments == nil {
		c.Payments = map[string]bool{}
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// MonthCode builds the "YYYY-MM" key used by the denormalized payments mirror
func MonthCode(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
