package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/scenic-area/scenic-commerce-golang/internal/auth"
	"github.com/scenic-area/scenic-commerce-golang/internal/database"
	"github.com/scenic-area/scenic-commerce-golang/internal/handlers"
	"github.com/scenic-area/scenic-commerce-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Role Authenticator ---
	// The admin credential is configuration, not a table row.
	adminAccount := os.Getenv("ADMIN_ACCOUNT")
	if adminAccount == "" {
		adminAccount = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "123456"
	}

	authenticator := auth.NewAuthenticator(db, auth.Config{
		AdminAccount:  adminAccount,
		AdminPassword: adminPassword,
	})

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:   db,
		Auth: authenticator,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting scenic-area commerce API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
