package usecase

import (
	authdomain "auth-backend/internal/auth/domain"
	authdto "auth-backend/internal/auth/dto"
	"auth-backend/internal/auth/oauth"
)

// MailSender is the slice of the mail service the auth flows need.
type MailSender interface {
	SendVerifyEmail(email, token string) error
	SendResetPassword(email, token string) error
}

// AuthUsecase is the credential lifecycle engine: registration, login,
// email verification, password reset, federated login and refresh-token
// rotation.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.AuthResult, error)
	Login(req *authdto.LoginRequest) (*authdto.AuthResult, error)
	VerifyEmail(rawToken string) error
	ResendVerification(email string) error
	ForgotPassword(email string) error
	ResetPassword(rawToken, newPassword string) error
	LoginWithGoogle(identity *oauth.Identity) (*authdto.AuthResult, error)
	RotateRefreshToken(incomingToken string) (*authdto.AuthResult, error)
	Logout(userID string) error
	LogoutByRefreshToken(rawToken string) error
	ValidateAccessToken(token string) (*authdomain.User, error)
}
