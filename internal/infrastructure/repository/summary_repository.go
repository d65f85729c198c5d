package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	domainRepo "github.com/milkmore/milkmore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new daily summary repository
func NewSummaryRepository(db *gorm.DB) domainRepo.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, summary *entity.DailySummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}

func (r *summaryRepository) Update(ctx context.Context, summary *entity.DailySummary) error {
	return r.db.WithContext(ctx).Save(summary).Error
}

func (r *summaryRepository) GetByDate(ctx context.Context, sellerID uuid.UUID, date string) (*entity.DailySummary, error) {
	var summary entity.DailySummary
	err := r.db.WithContext(ctx).First(&summary, "seller_id = ? AND date = ?", sellerID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &summary, err
}

func (r *summaryRepository) Latest(ctx context.Context, sellerID uuid.UUID) (*entity.DailySummary, error) {
	var summary entity.DailySummary
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("date DESC").
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &summary, err
}

func (r *summaryRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, limit int) ([]entity.DailySummary, error) {
	var summaries []entity.DailySummary
	query := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&summaries).Error
	return summaries, err
}
