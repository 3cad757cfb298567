package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scenic-area/scenic-commerce-golang/internal/models"
)

//
// --- Merchant Revenue Handlers ---
//

// GetShopRevenue is the handler for GET /api/merchant/revenue/:shopId.
// It returns the aggregate across every recorded month; per-month
// detail rows are not part of this endpoint.
func (h *Handlers) GetShopRevenue(c *gin.Context) {
	shopID := c.Param("shopId")

	var (
		total sql.NullFloat64 // SUM over zero rows is NULL
		count int
	)
	query := "SELECT SUM(revenue), COUNT(*) FROM ShopRevenue WHERE shop_id = ?"
	err := h.DB.QueryRow(query, shopID).Scan(&total, &count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch revenue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"overview": models.RevenueOverview{
			TotalIncome: total.Float64,
			TotalCount:  count,
		},
		"details": []models.ShopRevenue{},
	})
}

// AddRevenueInput is the request body for POST /api/merchant/revenue/add.
// Month arrives as "YYYY-MM". Amount carries no 'required' tag: a month
// with zero takings is a legitimate report, and 'required' would reject
// the zero value.
type AddRevenueInput struct {
	MerchantID int64   `json:"merchant_id" binding:"required"`
	Month      string  `json:"month" binding:"required"`
	Amount     float64 `json:"amount"`
	Remarks    string  `json:"remarks"`
}

// AddShopRevenue is the handler for POST /api/merchant/revenue/add.
// Revenue is keyed by (shop, month): submitting the same month again
// replaces the stored amount and remarks instead of adding a row.
func (h *Handlers) AddShopRevenue(c *gin.Context) {
	var input AddRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// The ShopRevenue key stores the first day of the reported month.
	month, err := time.Parse("2006-01", input.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "month must be formatted as YYYY-MM"})
		return
	}
	reportMonth := month.Format("2006-01-02")

	query := `
		INSERT INTO ShopRevenue (shop_id, report_month, revenue, comment)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE revenue = ?, comment = ?`
	if _, err := h.DB.Exec(query, input.MerchantID, reportMonth, input.Amount, input.Remarks, input.Amount, input.Remarks); err != nil {
		// Unlike PlaceOrder, this endpoint reports the underlying
		// store error to the merchant console.
		c.JSON(http.StatusOK, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "revenue recorded successfully"})
}
