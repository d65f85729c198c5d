package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/pagination"
)

// SellerRepository defines the interface for seller account data access
type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)
	GetByEmail(ctx context.Context, email string) (*entity.Seller, error)
	// GetByEmailOrPhone resolves a login identifier that may be either an
	// email address or a phone number.
	GetByEmailOrPhone(ctx context.Context, identifier string) (*entity.Seller, error)
	GetByProvider(ctx context.Context, provider, providerID string) (*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Seller, int64, error)
}
