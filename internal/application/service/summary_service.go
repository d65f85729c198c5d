package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
)

// SummaryService serves the per-day delivery rollups
type SummaryService struct {
	summaryRepo repository.SummaryRepository
	entryRepo   repository.EntryRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(summaryRepo repository.SummaryRepository, entryRepo repository.EntryRepository) *SummaryService {
	return &SummaryService{summaryRepo: summaryRepo, entryRepo: entryRepo}
}

// ForDate returns the seller's summary for one day. Days without entries get
// a zeroed summary rather than an error.
func (s *SummaryService) ForDate(ctx context.Context, sellerID uuid.UUID, rawDate string) (*entity.DailySummary, error) {
	date, err := normalizeEntryDate(rawDate)
	if err != nil {
		return nil, err
	}

	summary, err := s.summaryRepo.GetByDate(ctx, sellerID, date)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		return &entity.DailySummary{SellerID: sellerID, Date: date}, nil
	}
	return summary, nil
}

// Latest returns the seller's most recent summary, or nil when none exist
func (s *SummaryService) Latest(ctx context.Context, sellerID uuid.UUID) (*entity.DailySummary, error) {
	return s.summaryRepo.Latest(ctx, sellerID)
}

// List returns the seller's summaries newest first, capped at limit
func (s *SummaryService) List(ctx context.Context, sellerID uuid.UUID, limit int) ([]entity.DailySummary, error) {
	return s.summaryRepo.ListBySeller(ctx, sellerID, limit)
}

// CreateSummaryInput represents an explicit summary create input
type CreateSummaryInput struct {
	SellerID    uuid.UUID
	Date        string
	TotalLitres float64
	TotalAmount float64
}

// Create records a summary for a day that does not have one yet
func (s *SummaryService) Create(ctx context.Context, input *CreateSummaryInput) (*entity.DailySummary, error) {
	date, err := normalizeEntryDate(input.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.summaryRepo.GetByDate(ctx, input.SellerID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("Summary already exists")
	}

	summary := &entity.DailySummary{
		SellerID:    input.SellerID,
		Date:        date,
		TotalLitres: input.TotalLitres,
		TotalAmount: input.TotalAmount,
	}
	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// Rebuild recomputes one day's summary from its entries. The entry set is
// the source of truth; this repairs a cache that drifted after a failed
// incremental update.
func (s *SummaryService) Rebuild(ctx context.Context, sellerID uuid.UUID, rawDate string) (*entity.DailySummary, error) {
	date, err := normalizeEntryDate(rawDate)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListByDate(ctx, sellerID, date)
	if err != nil {
		return nil, err
	}

	var totalLitres, totalAmount float64
	for _, e := range entries {
		totalLitres += e.Litres
		totalAmount += e.Amount
	}

	summary, err := s.summaryRepo.GetByDate(ctx, sellerID, date)
	if err != nil {
		return nil, err
	}

	if summary == nil {
		summary = &entity.DailySummary{
			SellerID:    sellerID,
			Date:        date,
			TotalLitres: totalLitres,
			TotalAmount: totalAmount,
		}
		if err := s.summaryRepo.Create(ctx, summary); err != nil {
			return nil, err
		}
		return summary, nil
	}

	summary.TotalLitres = totalLitres
	summary.TotalAmount = totalAmount
	if err := s.summaryRepo.Update(ctx, summary); err != nil {
		return nil, err
	}
	return summary, nil
}
