package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
)

// SummaryRepository defines the interface for daily summary data operations.
type SummaryRepository interface {
	Create(ctx context.Context, summary *entity.DailySummary) error
	Update(ctx context.Context, summary *entity.DailySummary) error
	// GetByDate returns the seller's summary row for a delivery day, or
	// (nil, nil) when the day has no summary yet.
	GetByDate(ctx context.Context, sellerID uuid.UUID, date string) (*entity.DailySummary, error)
	// Latest returns the most recent summary by date, or (nil, nil) when the
	// seller has none.
	Latest(ctx context.Context, sellerID uuid.UUID) (*entity.DailySummary, error)
	// ListBySeller returns summaries ordered by date descending.
	ListBySeller(ctx context.Context, sellerID uuid.UUID, limit int) ([]entity.DailySummary, error)
}
