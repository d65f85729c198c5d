package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seller roles
const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// Seller represents a milk-delivery seller account. A seller owns all
// customers, entries and payments created under it; admins are sellers with
// an elevated role.
type Seller struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Email      *string        `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Phone      *string        `gorm:"size:50;uniqueIndex" json:"phone,omitempty"`
	Password   string         `gorm:"size:255" json:"-"`
	Role       string         `gorm:"size:20;default:'seller'" json:"role"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customers []Customer `gorm:"foreignKey:SellerID" json:"-"`
	Entries   []Entry    `gorm:"foreignKey:SellerID" json:"-"`
	Payments  []Payment  `gorm:"foreignKey:SellerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new seller
func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Seller model
func (Seller) TableName() string {
	return "sellers"
}

// IsAdmin reports whether the seller holds the admin role
func (s *Seller) IsAdmin() bool {
	return s.Role == RoleAdmin
}
