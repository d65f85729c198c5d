package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	domainRepo "github.com/milkmore/milkmore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) Find(ctx context.Context, sellerID, customerID uuid.UUID, month, year int) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		First(&payment, "seller_id = ? AND customer_id = ? AND month = ? AND year = ?", sellerID, customerID, month, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) DeleteByPeriod(ctx context.Context, sellerID, customerID uuid.UUID, month, year int) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Payment{}, "seller_id = ? AND customer_id = ? AND month = ? AND year = ?", sellerID, customerID, month, year).Error
}

func (r *paymentRepository) ListByPeriod(ctx context.Context, sellerID uuid.UUID, month, year int) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND month = ? AND year = ?", sellerID, month, year).
		Order("paid_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) ListByCustomer(ctx context.Context, sellerID, customerID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND customer_id = ?", sellerID, customerID).
		Order("year ASC, month ASC").
		Find(&payments).Error
	return payments, err
}
