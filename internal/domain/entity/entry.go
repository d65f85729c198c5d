package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDateLayout is the canonical calendar-day format for entry dates.
// Dates are stored as day strings, never timestamps, so month filtering is
// immune to timezone drift.
const EntryDateLayout = "2006-01-02"

// Entry is one recorded delivery. Amount is derived from the rate in effect
// when the entry was created and persisted; later rate changes never touch it.
type Entry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SellerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"seller_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Date       string    `gorm:"size:10;not null;index" json:"date"`
	Litres     float64   `gorm:"not null" json:"litres"`
	Amount     float64   `gorm:"not null" json:"amount"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Seller   Seller   `gorm:"foreignKey:SellerID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new entry
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Entry model
func (Entry) TableName() string {
	return "entries"
}

// Day parses the entry's calendar date
func (e *Entry) Day() (time.Time, error) {
	return time.Parse(EntryDateLayout, e.Date)
}

// InMonth reports whether the entry falls in the given calendar month/year.
// The comparison is by year and month components, never by instant ranges.
func (e *Entry) InMonth(month, year int) bool {
	d, err := e.Day()
	if err != nil {
		return false
	}
	return int(d.Month()) == month && d.Year() == year
}
