package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scenic-area/scenic-commerce-golang/internal/models"
)

// GetProducts is the handler for GET /api/products.
// Without a shop_id it lists every product; with one it lists only the
// products that shop sells, through the ShopProduct association.
func (h *Handlers) GetProducts(c *gin.Context) {
	shopID := c.Query("shop_id")

	var (
		query string
		args  []interface{}
	)
	if shopID != "" {
		query = `
			SELECT p.product_id, p.product_name, p.unit_price, p.remaining_stock
			FROM Product p
			JOIN ShopProduct sp ON p.product_id = sp.product_id
			WHERE sp.shop_id = ?
		`
		args = append(args, shopID)
	} else {
		query = "SELECT product_id, product_name, unit_price, remaining_stock FROM Product"
	}

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch products"})
		return
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.UnitPrice, &p.RemainingStock); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to scan product data"})
			return
		}
		products = append(products, p)
	}

	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}
