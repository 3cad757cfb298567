package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scenic-area/scenic-commerce-golang/internal/auth"
)

// LoginInput is the request body for POST /api/login. The 'id' field
// carries whatever the client logged in with: phone or tourist id for
// tourists, the shop account for merchants.
type LoginInput struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login is the handler for POST /api/login.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	identity, err := h.Auth.Authenticate(input.Role, input.ID, input.Password)
	if err != nil {
		// One uniform rejection for unknown roles, missing accounts and
		// wrong passwords alike.
		if errors.Is(err, auth.ErrAuthFailed) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid account or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "login failed"})
		return
	}

	token, err := auth.GenerateToken(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    identity.Role,
		"id":      identity.ID,
		"name":    identity.Name,
		"token":   token,
	})
}
