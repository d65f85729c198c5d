package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
)

// SettingsService handles seller-scoped settings, most importantly the
// per-litre milk rate.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	fallbackRate float64
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository, fallbackRate float64) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, fallbackRate: fallbackRate}
}

// GetRate returns the seller's configured per-litre rate, falling back to the
// application default when the seller has not set one or the stored value is
// unparseable.
func (s *SettingsService) GetRate(ctx context.Context, sellerID uuid.UUID) (float64, error) {
	setting, err := s.settingsRepo.Get(ctx, sellerID, entity.SettingKeyMilkRate)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return s.fallbackRate, nil
	}

	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || rate <= 0 {
		return s.fallbackRate, nil
	}
	return rate, nil
}

// SetRate stores the seller's per-litre rate. Existing entry amounts are
// never touched; the new rate applies to entries created afterwards.
func (s *SettingsService) SetRate(ctx context.Context, sellerID uuid.UUID, rate float64) (float64, error) {
	if rate <= 0 {
		return 0, apperror.NewBadRequestError("Rate must be greater than zero")
	}

	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if _, err := s.settingsRepo.Upsert(ctx, sellerID, entity.SettingKeyMilkRate, value); err != nil {
		return 0, err
	}
	return rate, nil
}
