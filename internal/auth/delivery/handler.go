package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	authdomain "auth-backend/internal/auth/domain"
	authdto "auth-backend/internal/auth/dto"
	"auth-backend/internal/auth/oauth"
	"auth-backend/internal/auth/usecase"
	"auth-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	refreshCookieName = "refresh_token"
	refreshCookiePath = "/api/auth/refresh"
	oauthCookieName   = "g_oauth"
	oauthCookieMaxAge = 10 * 60 // seconds
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	google      *oauth.GoogleService
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, google *oauth.GoogleService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		google:      google,
		config:      cfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authUsecase.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusCreated, authdto.AuthResponse{
		Success:     true,
		AccessToken: result.AccessToken,
		User:        authdto.NewUserResponse(result.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, authdto.AuthResponse{
		Success:     true,
		AccessToken: result.AccessToken,
		User:        authdto.NewUserResponse(result.User),
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	incoming, err := c.Cookie(refreshCookieName)
	if err != nil || incoming == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	result, err := h.authUsecase.RotateRefreshToken(incoming)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"success": true, "access_token": result.AccessToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if incoming, err := c.Cookie(refreshCookieName); err == nil && incoming != "" {
		if err := h.authUsecase.LogoutByRefreshToken(incoming); err != nil {
			respondError(c, err)
			return
		}
	}

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing token"})
		return
	}

	if err := h.authUsecase.VerifyEmail(token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email verified"})
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req authdto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ResendVerification(req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ForgotPassword(req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GoogleStart begins the OAuth handshake: state+nonce go into a short-lived
// HTTP-only cookie, then the browser is sent to Google.
func (h *AuthHandler) GoogleStart(c *gin.Context) {
	sn, err := h.google.MakeStateNonce()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	payload, err := json.Marshal(sn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthCookieName, string(payload), oauthCookieMaxAge, "/", "", h.config.CookieSecure, true)
	c.Redirect(http.StatusFound, h.google.AuthCodeURL(sn.State, sn.Nonce))
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing code/state"})
		return
	}

	raw, err := c.Cookie(oauthCookieName)
	if err != nil || raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing oauth cookie"})
		return
	}

	var sn oauth.StateNonce
	if err := json.Unmarshal([]byte(raw), &sn); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid oauth cookie"})
		return
	}

	// CSRF check: the state Google echoes back must match the one we set
	// before redirecting out.
	if state != sn.State {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid state"})
		return
	}

	// Single use: the cookie is dead whether or not the rest succeeds.
	c.SetCookie(oauthCookieName, "", -1, "/", "", h.config.CookieSecure, true)

	idToken, err := h.google.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	identity, err := h.google.VerifyIDToken(c.Request.Context(), idToken, sn.Nonce)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.authUsecase.LoginWithGoogle(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, authdto.AuthResponse{
		Success:     true,
		AccessToken: result.AccessToken,
		User:        authdto.NewUserResponse(result.User),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	value, exists := c.Get("user")
	user, ok := value.(*authdomain.User)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": authdto.NewUserResponse(user)})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, refreshToken, int(h.config.RefreshTokenTTL.Seconds()), refreshCookiePath, "", h.config.CookieSecure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, "", -1, refreshCookiePath, "", h.config.CookieSecure, true)
}

// respondError maps an AppError to its HTTP status. Anything outside the
// taxonomy is a plain 500 with no detail leaked.
func respondError(c *gin.Context, err error) {
	var appErr *authdomain.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"success": false, "message": appErr.Message, "code": appErr.Kind})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
}
