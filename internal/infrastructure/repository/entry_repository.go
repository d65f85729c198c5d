package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	domainRepo "github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/pagination"
	"gorm.io/gorm"
)

type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *gorm.DB) domainRepo.EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, sellerID, id uuid.UUID) (*entity.Entry, error) {
	var entry entity.Entry
	err := r.db.WithContext(ctx).First(&entry, "id = ? AND seller_id = ?", id, sellerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *entryRepository) Delete(ctx context.Context, sellerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Entry{}, "id = ? AND seller_id = ?", id, sellerID).Error
}

func (r *entryRepository) ListByCustomer(ctx context.Context, sellerID, customerID uuid.UUID) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND customer_id = ?", sellerID, customerID).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListByDate(ctx context.Context, sellerID uuid.UUID, date string) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND date = ?", sellerID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) ListByCustomerDateRange(ctx context.Context, sellerID, customerID uuid.UUID, from, to string) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND customer_id = ? AND date >= ? AND date <= ?", sellerID, customerID, from, to).
		Order("date ASC, created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepository) GetAny(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entry entity.Entry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *entryRepository) DeleteAny(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Entry{}, "id = ?", id).Error
}

func (r *entryRepository) ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Entry, int64, error) {
	var entries []entity.Entry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Entry{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&entries).Error

	return entries, total, err
}
