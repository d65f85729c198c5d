package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	domainRepo "github.com/milkmore/milkmore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves a seller's setting by key
func (r *settingsRepository) Get(ctx context.Context, sellerID uuid.UUID, key string) (*entity.Setting, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).Where("seller_id = ? AND key = ?", sellerID, key).First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert creates or overwrites a seller's setting
func (r *settingsRepository) Upsert(ctx context.Context, sellerID uuid.UUID, key, value string) (*entity.Setting, error) {
	existing, err := r.Get(ctx, sellerID, key)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Value = value
		if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	setting := &entity.Setting{
		SellerID: sellerID,
		Key:      key,
		Value:    value,
	}
	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
