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

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *gorm.DB) domainRepo.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).First(&seller, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) GetByEmailOrPhone(ctx context.Context, identifier string) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).First(&seller, "email = ? OR phone = ?", identifier, identifier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) GetByProvider(ctx context.Context, provider, providerID string) (*entity.Seller, error) {
	var seller entity.Seller
	err := r.db.WithContext(ctx).First(&seller, "provider = ? AND provider_id = ?", provider, providerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

func (r *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Seller{}, "id = ?", id).Error
}

func (r *sellerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Seller, int64, error) {
	var sellers []entity.Seller
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Seller{})

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&sellers).Error

	return sellers, total, err
}
