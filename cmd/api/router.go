package api

import (
	"net/http"

	"auth-backend/internal/auth/delivery"
	"auth-backend/internal/auth/oauth"
	authUsecase "auth-backend/internal/auth/usecase"
	"auth-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, google *oauth.GoogleService, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUsecase, google, cfg)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)

			// email verification
			auth.GET("/verify-email", authHandler.VerifyEmail)
			auth.POST("/resend-verification", authHandler.ResendVerification)

			// password reset
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)

			// google oauth
			auth.GET("/google", authHandler.GoogleStart)
			auth.GET("/google/callback", authHandler.GoogleCallback)

			auth.GET("/me", delivery.AuthMiddleware(authUsecase), authHandler.Me)
		}
	}
}
