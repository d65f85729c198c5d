package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetOTP is a stored one-time code for password resets. Codes are
// persisted with an explicit expiry that is checked on read, so stale codes
// die with the row instead of lingering in process memory.
type PasswordResetOTP struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Code      string    `gorm:"size:10;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new OTP
func (o *PasswordResetOTP) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PasswordResetOTP model
func (PasswordResetOTP) TableName() string {
	return "password_reset_otps"
}

// IsExpired checks if the code has expired
func (o *PasswordResetOTP) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}

// IsValid checks if the code is usable (not expired and not used)
func (o *PasswordResetOTP) IsValid() bool {
	return !o.IsExpired() && !o.Used
}
