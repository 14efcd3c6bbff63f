package main

import (
	"log"

	api "auth-backend/cmd/api"
	authdomain "auth-backend/internal/auth/domain"
	"auth-backend/internal/auth/oauth"
	authRepo "auth-backend/internal/auth/repository"
	authUsecase "auth-backend/internal/auth/usecase"
	"auth-backend/pkg/config"
	"auth-backend/pkg/database"
	"auth-backend/pkg/mailer"
)

func main() {
	// Load configuration (aborts on missing signing secrets)
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize dependencies (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	mailService := mailer.NewMailService(mailer.NewSMTPMailer(cfg), cfg.AppURL)
	tokenService := authUsecase.NewTokenService(cfg)
	googleService := oauth.NewGoogleService(cfg)

	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, tokenService, mailService)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, googleService, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
