package repository

import (
	"time"

	authdomain "auth-backend/internal/auth/domain"
)

// UserRepository is the persistence boundary for user records. Lookups that
// miss return (nil, nil) so callers can distinguish absence from store errors.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)

	// FindByVerifyTokenHash matches an unexpired email-verification
	// fingerprint. Expired pairs are treated as absent, not purged.
	FindByVerifyTokenHash(hash string, now time.Time) (*authdomain.User, error)

	// FindByResetTokenHash matches an unexpired password-reset fingerprint
	// on a local-provider account.
	FindByResetTokenHash(hash string, now time.Time) (*authdomain.User, error)

	Update(user *authdomain.User) error

	// UpdateRefreshTokenHash overwrites the stored refresh fingerprint.
	// Passing nil revokes the active session.
	UpdateRefreshTokenHash(userID string, hash *string) error
}
