package oauth

import (
	"context"
	"errors"

	authdomain "auth-backend/internal/auth/domain"
	"auth-backend/pkg/config"
	"auth-backend/pkg/crypto"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const stateNonceBytes = 16

// StateNonce is the anti-CSRF/anti-replay pair bound to one authorization
// round-trip. state is echoed back on the redirect, nonce is embedded in the
// ID token Google returns.
type StateNonce struct {
	State string `json:"state"`
	Nonce string `json:"nonce"`
}

// Identity is the verified assertion extracted from a Google ID token.
type Identity struct {
	Email         string
	GoogleID      string
	Name          string
	Picture       string
	EmailVerified bool
}

// validateFunc matches idtoken.Validate so tests can stub Google's JWKS.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleService drives the authorization-code handshake against Google.
type GoogleService struct {
	oauthConfig *oauth2.Config
	validate    validateFunc
}

func NewGoogleService(cfg *config.Config) *GoogleService {
	return &GoogleService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

// MakeStateNonce generates two independent random values for one handshake.
func (s *GoogleService) MakeStateNonce() (*StateNonce, error) {
	state, err := crypto.RandomToken(stateNonceBytes)
	if err != nil {
		return nil, err
	}
	nonce, err := crypto.RandomToken(stateNonceBytes)
	if err != nil {
		return nil, err
	}
	return &StateNonce{State: state, Nonce: nonce}, nil
}

// AuthCodeURL builds the Google authorization redirect carrying state and
// nonce, requesting offline access.
func (s *GoogleService) AuthCodeURL(state, nonce string) string {
	return s.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("nonce", nonce),
	)
}

// ExchangeCode swaps a one-time authorization code for Google's tokens and
// returns the raw ID token. A provider-side rejection surfaces as BadRequest
// with Google's error body.
func (s *GoogleService) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return "", authdomain.BadRequest("google token exchange failed: " + string(retrieveErr.Body))
		}
		return "", err
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", authdomain.BadRequest("google response missing id_token")
	}
	return idToken, nil
}

// VerifyIDToken checks the ID token's signature and audience, then binds it
// to this handshake via the nonce claim.
func (s *GoogleService) VerifyIDToken(ctx context.Context, idToken, expectedNonce string) (*Identity, error) {
	payload, err := s.validate(ctx, idToken, s.oauthConfig.ClientID)
	if err != nil {
		return nil, authdomain.Unauthorized("invalid google id token")
	}
	if payload == nil {
		return nil, authdomain.Unauthorized("invalid google id token")
	}

	if nonce, _ := payload.Claims["nonce"].(string); nonce != expectedNonce {
		return nil, authdomain.Unauthorized("invalid nonce")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, authdomain.Unauthorized("google token missing email")
	}

	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)

	return &Identity{
		Email:         email,
		GoogleID:      payload.Subject,
		Name:          name,
		Picture:       picture,
		EmailVerified: verified,
	}, nil
}
