package handlers

import (
	"database/sql"

	"github.com/scenic-area/scenic-commerce-golang/internal/auth"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB   *sql.DB             // Shared connection pool
	Auth *auth.Authenticator // Role-dispatch login
}
