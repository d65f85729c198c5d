package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations.
// Seller ownership is folded into every scoped lookup: a customer that exists
// but belongs to another seller behaves exactly like a missing one.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, sellerID, id uuid.UUID) (*entity.Customer, error)
	GetByCode(ctx context.Context, sellerID uuid.UUID, code string) (*entity.Customer, error)
	// GetAny looks up a customer without a seller scope (admin console only)
	GetAny(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, sellerID, id uuid.UUID) error
	DeleteAny(ctx context.Context, id uuid.UUID) error
	// ListBySeller returns every customer owned by the seller, unpaginated
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Customer, error)
	// List returns customers with pagination. If skipSellerFilter is true,
	// customers of all sellers are returned (admin console).
	List(ctx context.Context, sellerID uuid.UUID, params *pagination.PaginationParams, search string, skipSellerFilter bool) ([]entity.Customer, int64, error)
}
