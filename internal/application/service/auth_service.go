package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/milkmore/milkmore-api/internal/domain/entity"
	"github.com/milkmore/milkmore-api/internal/domain/repository"
	"github.com/milkmore/milkmore-api/pkg/apperror"
	"github.com/milkmore/milkmore-api/pkg/email"
	"github.com/milkmore/milkmore-api/pkg/oauth"
	"github.com/milkmore/milkmore-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	sellerRepo   repository.SellerRepository
	otpRepo      repository.PasswordResetOTPRepository
	jwtManager   *utils.JWTManager
	emailService *email.EmailService
	googleOAuth  *oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(
	sellerRepo repository.SellerRepository,
	otpRepo repository.PasswordResetOTPRepository,
	jwtManager *utils.JWTManager,
	emailService *email.EmailService,
	googleOAuth *oauth.GoogleService,
) *AuthService {
	return &AuthService{
		sellerRepo:   sellerRepo,
		otpRepo:      otpRepo,
		jwtManager:   jwtManager,
		emailService: emailService,
		googleOAuth:  googleOAuth,
	}
}

// LoginInput represents the login input. Identifier is an email or phone.
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Seller       *entity.Seller
	AccessToken  string
	RefreshToken string
}

// Login authenticates a seller by email or phone and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	seller, err := s.sellerRepo.GetByEmailOrPhone(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, seller.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(seller)
}

func (s *AuthService) issueTokens(seller *entity.Seller) (*LoginOutput, error) {
	emailAddr := ""
	if seller.Email != nil {
		emailAddr = *seller.Email
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(seller.ID, emailAddr, seller.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(seller.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Seller:       seller,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input. At least one of Email or
// Phone must be set.
type RegisterInput struct {
	Name     string
	Email    *string
	Phone    *string
	Password string
}

// Register creates a new seller account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*LoginOutput, error) {
	if input.Email == nil && input.Phone == nil {
		return nil, apperror.NewBadRequestError("Email or phone is required")
	}

	if input.Email != nil {
		existing, err := s.sellerRepo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Email already registered")
		}
	}
	if input.Phone != nil {
		existing, err := s.sellerRepo.GetByEmailOrPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Phone already registered")
		}
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	seller := &entity.Seller{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hashedPassword,
		Role:     entity.RoleSeller,
		Provider: "local",
	}

	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	return s.issueTokens(seller)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	sellerID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(seller)
}

// GetCurrentSeller returns the current seller by ID
func (s *AuthService) GetCurrentSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.ErrNotFound
	}
	return seller, nil
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	SellerID uuid.UUID
	Name     string
	Phone    *string
	Photo    *string
}

// UpdateProfile updates the seller's profile
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != "" {
		seller.Name = input.Name
	}
	if input.Phone != nil {
		existing, err := s.sellerRepo.GetByEmailOrPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != seller.ID {
			return nil, apperror.NewConflictError("Phone already registered")
		}
		seller.Phone = input.Phone
	}
	if input.Photo != nil {
		seller.Photo = input.Photo
	}

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	SellerID        uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the seller's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	seller, err := s.sellerRepo.GetByID(ctx, input.SellerID)
	if err != nil {
		return err
	}
	if seller == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, seller.Password) {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	seller.Password = hashedPassword
	return s.sellerRepo.Update(ctx, seller)
}

// otpLength is the number of digits in a password reset code
const otpLength = 6

// otpTTL is how long a password reset code stays valid
const otpTTL = 10 * time.Minute

func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}

// ForgotPassword sends a reset code to the email if an account exists.
// It reports success either way to prevent email enumeration.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	seller, err := s.sellerRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil
	}
	if seller == nil {
		return nil
	}

	// Invalidate outstanding codes before issuing a new one
	_ = s.otpRepo.DeleteByEmail(ctx, emailAddr)

	code, err := generateOTP()
	if err != nil {
		return err
	}

	otp := &entity.PasswordResetOTP{
		Email:     emailAddr,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
		Used:      false,
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetOTP(emailAddr, code); err != nil {
		return err
	}

	return nil
}

// ResetPasswordInput represents the reset password input
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// ResetPassword resets the seller's password using a valid OTP code
func (s *AuthService) ResetPassword(ctx context.Context, input *ResetPasswordInput) error {
	otp, err := s.otpRepo.GetLatestByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if otp == nil || !otp.IsValid() || otp.Code != input.Code {
		return apperror.NewBadRequestError("Invalid or expired code")
	}

	seller, err := s.sellerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if seller == nil {
		return apperror.NewBadRequestError("Invalid or expired code")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	seller.Password = hashedPassword
	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return err
	}

	if err := s.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return err
	}

	_ = s.otpRepo.DeleteByEmail(ctx, input.Email)

	return nil
}

// GoogleAuthURL returns the Google consent page URL for the given state
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.googleOAuth.Enabled() {
		return "", oauth.ErrNotConfigured
	}
	return s.googleOAuth.ConsentURL(state), nil
}

// GoogleSignIn exchanges an OAuth code, then finds or creates the matching
// seller account. Existing local accounts with the same email are linked to
// Google rather than duplicated.
func (s *AuthService) GoogleSignIn(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.googleOAuth.Enabled() {
		return nil, oauth.ErrNotConfigured
	}

	token, err := s.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}

	info, err := s.googleOAuth.FetchProfile(ctx, token)
	if err != nil {
		return nil, apperror.NewBadRequestError("Failed to fetch Google account info")
	}

	seller, err := s.sellerRepo.GetByProvider(ctx, "google", info.ID)
	if err != nil {
		return nil, err
	}

	if seller == nil && info.Email != "" {
		seller, err = s.sellerRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
		if seller != nil {
			seller.Provider = "google"
			seller.ProviderID = &info.ID
			if seller.Photo == nil && info.Picture != "" {
				seller.Photo = &info.Picture
			}
			if err := s.sellerRepo.Update(ctx, seller); err != nil {
				return nil, err
			}
		}
	}

	if seller == nil {
		seller = &entity.Seller{
			Name:       info.Name,
			Email:      &info.Email,
			Role:       entity.RoleSeller,
			Provider:   "google",
			ProviderID: &info.ID,
		}
		if info.Picture != "" {
			seller.Photo = &info.Picture
		}
		if err := s.sellerRepo.Create(ctx, seller); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(seller)
}
