package domain

import "time"

// Provider values for User.Provider
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Name     string `json:"name,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider"` // "local" or "google"

	PasswordHash string `json:"-"` // only for local accounts
	GoogleID     string `json:"-" gorm:"index"`

	EmailVerified bool `json:"email_verified"`

	// Verification and reset pairs are set together and cleared together.
	// Only the sha256 fingerprint of a token is ever stored.
	EmailVerifyTokenHash   *string    `json:"-"`
	EmailVerifyExpires     *time.Time `json:"-"`
	ResetPasswordTokenHash *string    `json:"-"`
	ResetPasswordExpires   *time.Time `json:"-"`

	// Fingerprint of the single currently-valid refresh token.
	// nil means no active session.
	RefreshTokenHash *string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
