package dto

import authdomain "auth-backend/internal/auth/domain"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	Name     string `json:"name" binding:"omitempty,min=1,max=80"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required,min=10"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=100"`
}

// UserResponse is the public projection of a user record. Hashes and token
// fingerprints never leave the service.
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}

func NewUserResponse(user *authdomain.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Picture:       user.Picture,
		EmailVerified: user.EmailVerified,
	}
}

// AuthResult is what the lifecycle operations hand back to the HTTP layer.
// The refresh token travels onward as a cookie, not in the response body.
type AuthResult struct {
	User         *authdomain.User
	AccessToken  string
	RefreshToken string
}

type AuthResponse struct {
	Success     bool          `json:"success"`
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
