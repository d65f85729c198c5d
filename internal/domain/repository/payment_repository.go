package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment record data operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// Find returns the payment record for a customer's billing period, or
	// (nil, nil) when none exists.
	Find(ctx context.Context, sellerID, customerID uuid.UUID, month, year int) (*entity.Payment, error)
	// DeleteByPeriod removes all payment records for the customer's billing
	// period. Deleting a period with no records is not an error.
	DeleteByPeriod(ctx context.Context, sellerID, customerID uuid.UUID, month, year int) error
	ListByPeriod(ctx context.Context, sellerID uuid.UUID, month, year int) ([]entity.Payment, error)
	ListByCustomer(ctx context.Context, sellerID, customerID uuid.UUID) ([]entity.Payment, error)
}
