package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	domainRepo "github.com/milkmore/milkmore-api/internal/domain/repository"
	"gorm.io/gorm"
)

// passwordResetOTPRepository implements the PasswordResetOTPRepository interface
type passwordResetOTPRepository struct {
	db *gorm.DB
}

// NewPasswordResetOTPRepository creates a new password reset OTP repository
func NewPasswordResetOTPRepository(db *gorm.DB) domainRepo.PasswordResetOTPRepository {
	return &passwordResetOTPRepository{db: db}
}

// Create stores a new password reset OTP
func (r *passwordResetOTPRepository) Create(ctx context.Context, otp *entity.PasswordResetOTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

// GetLatestByEmail retrieves the most recent unused OTP for an email
func (r *passwordResetOTPRepository) GetLatestByEmail(ctx context.Context, email string) (*entity.PasswordResetOTP, error) {
	var otp entity.PasswordResetOTP
	err := r.db.WithContext(ctx).
		Where("email = ? AND used = ?", email, false).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

// MarkUsed marks an OTP as used
func (r *passwordResetOTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entity.PasswordResetOTP{}).
		Where("id = ?", id).
		Update("used", true).Error
}

// DeleteByEmail deletes all OTPs for a specific email
func (r *passwordResetOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&entity.PasswordResetOTP{}).Error
}
