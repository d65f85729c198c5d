package service

import (
	"testing"
	"time"

	"github.com/milkmore/milkmore-api/internal/domain/entity"
	infraRepo "github.com/milkmore/milkmore-api/internal/infrastructure/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/milkmore/milkmore-api/pkg/email"
	"github.com/milkmore/milkmore-api/pkg/oauth"
	"github.com/milkmore/milkmore-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	emailService := email.NewEmailService(email.EmailConfig{})
	googleOAuth := oauth.NewGoogleService(oauth.GoogleConfig{})

	svc := NewAuthService(
		infraRepo.NewSellerRepository(db),
		infraRepo.NewPasswordResetOTPRepository(db),
		jwtManager,
		emailService,
		googleOAuth,
	)
	return svc, db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	emailAddr := "dairy@example.com"
	output, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Dairy Seller",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, entity.RoleSeller, output.Seller.Role)

	login, err := svc.Login(t.Context(), &LoginInput{
		Identifier: "dairy@example.com",
		Password:   "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, output.Seller.ID, login.Seller.ID)
}

func TestRegisterRequiresEmailOrPhone(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "No Contact",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRegisterWithPhoneAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	phone := "9876543210"
	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Phone Seller",
		Phone:    &phone,
		Password: "secret123",
	})
	require.NoError(t, err)

	login, err := svc.Login(t.Context(), &LoginInput{
		Identifier: "9876543210",
		Password:   "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Phone Seller", login.Seller.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	emailAddr := "dairy@example.com"
	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "First",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(t.Context(), &RegisterInput{
		Name:     "Second",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	emailAddr := "dairy@example.com"
	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Dairy Seller",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(t.Context(), &LoginInput{
		Identifier: "dairy@example.com",
		Password:   "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	svc, _ := newAuthService(t)

	emailAddr := "dairy@example.com"
	output, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Dairy Seller",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(t.Context(), output.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, output.Seller.ID, refreshed.Seller.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(t.Context(), "not-a-token")
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)

	emailAddr := "dairy@example.com"
	output, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Dairy Seller",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(t.Context(), &ChangePasswordInput{
		SellerID:        output.Seller.ID,
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	require.Error(t, err)

	err = svc.ChangePassword(t.Context(), &ChangePasswordInput{
		SellerID:        output.Seller.ID,
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(t.Context(), &LoginInput{
		Identifier: "dairy@example.com",
		Password:   "newsecret",
	})
	require.NoError(t, err)
}

func TestResetPasswordWithOTP(t *testing.T) {
	svc, db := newAuthService(t)

	emailAddr := "dairy@example.com"
	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Dairy Seller",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)

	otp := &entity.PasswordResetOTP{
		Email:     emailAddr,
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, db.Create(otp).Error)

	// wrong code is rejected
	err = svc.ResetPassword(t.Context(), &ResetPasswordInput{
		Email:       emailAddr,
		Code:        "654321",
		NewPassword: "resetpass",
	})
	require.Error(t, err)

	err = svc.ResetPassword(t.Context(), &ResetPasswordInput{
		Email:       emailAddr,
		Code:        "123456",
		NewPassword: "resetpass",
	})
	require.NoError(t, err)

	_, err = svc.Login(t.Context(), &LoginInput{
		Identifier: emailAddr,
		Password:   "resetpass",
	})
	require.NoError(t, err)

	// the code cannot be replayed
	err = svc.ResetPassword(t.Context(), &ResetPasswordInput{
		Email:       emailAddr,
		Code:        "123456",
		NewPassword: "again",
	})
	require.Error(t, err)
}

func TestResetPasswordExpiredOTP(t *testing.T) {
	svc, db := newAuthService(t)

	emailAddr := "dairy@example.com"
	_, err := svc.Register(t.Context(), &RegisterInput{
		Name:     "Dairy Seller",
		Email:    &emailAddr,
		Password: "secret123",
	})
	require.NoError(t, err)

	otp := &entity.PasswordResetOTP{
		Email:     emailAddr,
		Code:      "123456",
		ExpiresAt: time.Now().Add(-1 * time.Minute),
	}
	require.NoError(t, db.Create(otp).Error)

	err = svc.ResetPassword(t.Context(), &ResetPasswordInput{
		Email:       emailAddr,
		Code:        "123456",
		NewPassword: "resetpass",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
