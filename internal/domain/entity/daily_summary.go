package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailySummary is the per-(seller, date) rollup of litres and amount across
// all entries for that day. It is a cache maintained incrementally on each
// entry insert; the Entry set is the source of truth and wins whenever the
// two disagree.
type DailySummary struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_seller_date" json:"seller_id"`
	Date        string    `gorm:"size:10;not null;uniqueIndex:idx_seller_date" json:"date"`
	TotalLitres float64   `gorm:"default:0" json:"total_litres"`
	TotalAmount float64   `gorm:"default:0" json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new summary
func (s *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailySummary model
func (DailySummary) TableName() string {
	return "daily_summaries"
}
