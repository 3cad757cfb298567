package handlers

import (
	"database/sql"
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scenic-area/scenic-commerce-golang/internal/models"
)

//
// --- Tourist Profile & Registration ---
//

// GetProfile is the handler for GET /api/user/profile/:touristId.
func (h *Handlers) GetProfile(c *gin.Context) {
	touristID := c.Param("touristId")

	var (
		tourist  models.Tourist
		spending sql.NullFloat64 // NULL until the first order lands
	)
	query := "SELECT name, phone, member_level, total_spending FROM Tourist WHERE tourist_id = ?"
	err := h.DB.QueryRow(query, touristID).Scan(&tourist.Name, &tourist.Phone, &tourist.MemberLevel, &spending)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"name":     tourist.Name,
			"phone":    tourist.Phone,
			"level":    tourist.MemberLevel,
			"spending": spending.Float64,
		},
	})
}

// RegisterInput is the request body for POST /api/register.
type RegisterInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Register is the handler for POST /api/register. New tourists start at
// member level 0 with no recorded spending.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if input.Name == "" {
		input.Name = "new user"
	}

	// Tourist ids are short numbers the front desk can read out loud.
	newID := 1000 + rand.Intn(9000)

	query := `
		INSERT INTO Tourist (tourist_id, name, phone, member_level, password, total_spending)
		VALUES (?, ?, ?, 0, ?, 0)`
	if _, err := h.DB.Exec(query, newID, input.Name, input.Phone, input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "registered successfully"})
}
