package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
)

// PasswordResetOTPRepository defines the interface for password reset OTP operations.
type PasswordResetOTPRepository interface {
	Create(ctx context.Context, otp *entity.PasswordResetOTP) error
	// GetLatestByEmail returns the most recent unused OTP for the email, or
	// (nil, nil) when none exists. Expiry is the caller's concern.
	GetLatestByEmail(ctx context.Context, email string) (*entity.PasswordResetOTP, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	// DeleteByEmail invalidates every outstanding OTP for the email.
	DeleteByEmail(ctx context.Context, email string) error
}
