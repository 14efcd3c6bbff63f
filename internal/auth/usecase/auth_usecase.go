package usecase

import (
	"strings"
	"time"

	authdomain "auth-backend/internal/auth/domain"
	authdto "auth-backend/internal/auth/dto"
	"auth-backend/internal/auth/oauth"
	"auth-backend/internal/auth/repository"
	"auth-backend/pkg/crypto"
)

const (
	verifyTokenTTL = time.Hour
	resetTokenTTL  = 30 * time.Minute
	rawTokenBytes  = 32
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	mail     MailSender
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *TokenService, mail MailSender) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		mail:     mail,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResult, error) {
	email := strings.ToLower(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.Conflict("email already in use")
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:        email,
		Name:         req.Name,
		Provider:     authdomain.ProviderLocal,
		PasswordHash: passwordHash,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := u.sendVerification(user); err != nil {
		return nil, err
	}

	return u.startSession(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResult, error) {
	user, err := u.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, authdomain.Unauthorized("invalid credentials")
	}

	if !crypto.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, authdomain.Unauthorized("invalid credentials")
	}

	if !user.EmailVerified {
		return nil, authdomain.Forbidden("email not verified")
	}

	return u.startSession(user)
}

func (u *authUsecase) VerifyEmail(rawToken string) error {
	user, err := u.userRepo.FindByVerifyTokenHash(crypto.Fingerprint(rawToken), time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.BadRequest("invalid or expired token")
	}

	user.EmailVerified = true
	user.EmailVerifyTokenHash = nil
	user.EmailVerifyExpires = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) ResendVerification(email string) error {
	user, err := u.userRepo.FindByEmail(strings.ToLower(email))
	if err != nil {
		return err
	}
	// Don't reveal whether the account exists
	if user == nil || user.EmailVerified {
		return nil
	}

	return u.sendVerification(user)
}

func (u *authUsecase) ForgotPassword(email string) error {
	user, err := u.userRepo.FindByEmail(strings.ToLower(email))
	if err != nil {
		return err
	}
	// Don't reveal whether the account exists; resets only apply to
	// password-based accounts
	if user == nil || user.Provider != authdomain.ProviderLocal {
		return nil
	}

	resetToken, err := crypto.RandomToken(rawTokenBytes)
	if err != nil {
		return err
	}

	hash := crypto.Fingerprint(resetToken)
	expires := time.Now().Add(resetTokenTTL)
	user.ResetPasswordTokenHash = &hash
	user.ResetPasswordExpires = &expires
	if err := u.userRepo.Update(user); err != nil {
		return err
	}

	return u.mail.SendResetPassword(user.Email, resetToken)
}

func (u *authUsecase) ResetPassword(rawToken, newPassword string) error {
	user, err := u.userRepo.FindByResetTokenHash(crypto.Fingerprint(rawToken), time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.BadRequest("invalid or expired token")
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	user.ResetPasswordTokenHash = nil
	user.ResetPasswordExpires = nil
	// Revoke the active refresh session: a compromised credential means any
	// outstanding refresh token is suspect.
	user.RefreshTokenHash = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) LoginWithGoogle(identity *oauth.Identity) (*authdto.AuthResult, error) {
	email := strings.ToLower(identity.Email)

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &authdomain.User{
			Email:         email,
			Name:          identity.Name,
			Picture:       identity.Picture,
			Provider:      authdomain.ProviderGoogle,
			GoogleID:      identity.GoogleID,
			EmailVerified: identity.EmailVerified,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
	} else {
		// Link the Google identity to the existing account by email match.
		// Documented policy: whoever controls the Google account for this
		// address is treated as the account owner.
		if user.GoogleID == "" {
			user.GoogleID = identity.GoogleID
		}
		if !user.EmailVerified && identity.EmailVerified {
			user.EmailVerified = true
		}
		if user.Name == "" && identity.Name != "" {
			user.Name = identity.Name
		}
		if user.Picture == "" && identity.Picture != "" {
			user.Picture = identity.Picture
		}
		if err := u.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return u.startSession(user)
}

func (u *authUsecase) RotateRefreshToken(incomingToken string) (*authdto.AuthResult, error) {
	claims, err := u.tokens.VerifyRefreshToken(incomingToken)
	if err != nil {
		return nil, authdomain.Unauthorized("unauthorized")
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil || user.RefreshTokenHash == nil {
		return nil, authdomain.Unauthorized("unauthorized")
	}

	if !crypto.FingerprintEqual(crypto.Fingerprint(incomingToken), *user.RefreshTokenHash) {
		// The token is validly signed but no longer current: reuse or theft.
		// Kill the session before failing so neither holder can continue.
		if err := u.userRepo.UpdateRefreshTokenHash(user.ID, nil); err != nil {
			return nil, err
		}
		return nil, authdomain.Unauthorized("unauthorized")
	}

	return u.startSession(user)
}

func (u *authUsecase) Logout(userID string) error {
	return u.userRepo.UpdateRefreshTokenHash(userID, nil)
}

// LogoutByRefreshToken revokes the session named by a refresh cookie.
// Best effort: an unparseable or expired token has nothing to revoke.
func (u *authUsecase) LogoutByRefreshToken(rawToken string) error {
	claims, err := u.tokens.VerifyRefreshToken(rawToken)
	if err != nil {
		return nil
	}
	return u.Logout(claims.Subject)
}

func (u *authUsecase) ValidateAccessToken(token string) (*authdomain.User, error) {
	claims, err := u.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, authdomain.Unauthorized("invalid or expired token")
	}

	user, err := u.userRepo.FindByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.Unauthorized("user not found")
	}
	return user, nil
}

// sendVerification generates a fresh verification token, stores its
// fingerprint with a 1h expiry and emails the raw token.
func (u *authUsecase) sendVerification(user *authdomain.User) error {
	verifyToken, err := crypto.RandomToken(rawTokenBytes)
	if err != nil {
		return err
	}

	hash := crypto.Fingerprint(verifyToken)
	expires := time.Now().Add(verifyTokenTTL)
	user.EmailVerifyTokenHash = &hash
	user.EmailVerifyExpires = &expires
	if err := u.userRepo.Update(user); err != nil {
		return err
	}

	return u.mail.SendVerifyEmail(user.Email, verifyToken)
}

// startSession issues a token pair and persists the refresh fingerprint,
// overwriting any previous one. One active refresh session per user.
func (u *authUsecase) startSession(user *authdomain.User) (*authdto.AuthResult, error) {
	accessToken, refreshToken, err := u.tokens.IssueTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	hash := crypto.Fingerprint(refreshToken)
	if err := u.userRepo.UpdateRefreshTokenHash(user.ID, &hash); err != nil {
		return nil, err
	}
	user.RefreshTokenHash = &hash

	return &authdto.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
