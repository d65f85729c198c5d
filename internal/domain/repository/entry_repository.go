package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/pkg/pagination"
)

// EntryRepository defines the interface for delivery entry data operations.
type EntryRepository interface {
	Create(ctx context.Context, entry *entity.Entry) error
	GetByID(ctx context.Context, sellerID, id uuid.UUID) (*entity.Entry, error)
	Update(ctx context.Context, entry *entity.Entry) error
	Delete(ctx context.Context, sellerID, id uuid.UUID) error
	ListByCustomer(ctx context.Context, sellerID, customerID uuid.UUID) ([]entity.Entry, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]entity.Entry, error)
	// ListByDate returns the seller's entries for a single delivery day,
	// ordered by creation time ascending.
	ListByDate(ctx context.Context, sellerID uuid.UUID, date string) ([]entity.Entry, error)
	// ListByCustomerDateRange returns a customer's entries with date in
	// [from, to], ordered by date ascending.
	ListByCustomerDateRange(ctx context.Context, sellerID, customerID uuid.UUID, from, to string) ([]entity.Entry, error)
	// ListAll returns entries across all sellers, newest first (admin console).
	ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Entry, int64, error)
	// GetAny and DeleteAny skip the seller filter (admin console).
	GetAny(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	DeleteAny(ctx context.Context, id uuid.UUID) error
}
