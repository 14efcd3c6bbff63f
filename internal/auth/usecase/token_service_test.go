package usecase

import (
	"strings"
	"testing"
	"time"

	"auth-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewTokenService(testConfig())

	access, refresh, err := s.IssueTokenPair("user-42", "a@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := s.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)

	claims, err = s.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestTokenKeySeparation(t *testing.T) {
	s := NewTokenService(testConfig())

	access, refresh, err := s.IssueTokenPair("user-42", "a@example.com")
	require.NoError(t, err)

	// tokens are not interchangeable across the two secrets
	_, err = s.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = s.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpiry(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	cfg.RefreshTokenTTL = -time.Minute
	s := NewTokenService(cfg)

	access, refresh, err := s.IssueTokenPair("user-42", "a@example.com")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
	_, err = s.VerifyRefreshToken(refresh)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	s := NewTokenService(testConfig())

	other := NewTokenService(&config.Config{
		JWTAccessSecret:  strings.Repeat("x", 32),
		JWTRefreshSecret: strings.Repeat("y", 32),
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  168 * time.Hour,
	})

	_, refresh, err := other.IssueTokenPair("user-42", "a@example.com")
	require.NoError(t, err)

	_, err = s.VerifyRefreshToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenTampered(t *testing.T) {
	s := NewTokenService(testConfig())

	access, err := s.IssueAccessToken("user-42", "a@example.com")
	require.NoError(t, err)

	_, err = s.VerifyAccessToken(access + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = s.VerifyAccessToken("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
