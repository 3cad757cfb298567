package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scenic-area/scenic-commerce-golang/internal/models"
)

//
// --- Order Handlers ---
//

// PlaceOrderInput is the request body for POST /api/order.
type PlaceOrderInput struct {
	TouristID int64 `json:"tourist_id" binding:"required"`
	ProductID int64 `json:"product_id" binding:"required"`
}

// PlaceOrder is the handler for POST /api/order.
// It creates the order header, one order line and the stock decrement
// as a single transaction: either all three land or none do.
func (h *Handlers) PlaceOrder(c *gin.Context) {
	// 1. --- Bind & Validate Input ---
	var input PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// 2. --- Begin Transaction ---
	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to start transaction"})
		return
	}
	defer tx.Rollback() // Safety net

	// 3. --- Snapshot the Product Price ---
	// This is the price the order keeps, whatever happens to the
	// product row later.
	var price float64
	err = tx.QueryRow("SELECT unit_price FROM Product WHERE product_id = ?", input.ProductID).Scan(&price)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}

	// 4. --- Insert the Order Header ---
	order := models.Order{
		TouristID:  input.TouristID,
		TotalPrice: price,
		Status:     "paid",
		Comment:    "app order",
	}
	orderQuery := "INSERT INTO `Order` (tourist_id, total_price, order_time, order_status, comment) VALUES (?, ?, NOW(), ?, ?)"
	result, err := tx.Exec(orderQuery, order.TouristID, order.TotalPrice, order.Status, order.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}

	// 5. --- Insert the Order Line ---
	line := models.OrderInfo{
		OrderID:   orderID,
		ProductID: input.ProductID,
		Quantity:  1,
		UnitPrice: price, // Snapshot, not a reference to the product row
		Discount:  1.0,
		Comment:   "no discount",
	}
	infoQuery := `
		INSERT INTO OrderInfo (order_id, product_id, quantity, unit_price, discount, comment)
		VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.Exec(infoQuery, line.OrderID, line.ProductID, line.Quantity, line.UnitPrice, line.Discount, line.Comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}

	// 6. --- Decrement Stock (guarded) ---
	// The decrement only applies while stock is positive; zero rows
	// affected means the product just sold out and the whole order
	// rolls back. This is what keeps stock from going negative under
	// concurrent orders.
	stockQuery := "UPDATE Product SET remaining_stock = remaining_stock - 1 WHERE product_id = ? AND remaining_stock > 0"
	res, err := tx.Exec(stockQuery, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "product is out of stock"})
		return
	}

	// 7. --- Commit ---
	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to place order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("order %d placed successfully", orderID),
	})
}

// GetOrders is the handler for GET /api/orders/:touristId.
// It returns the tourist's order history, newest first, with the unit
// price snapshot each line was bought at.
func (h *Handlers) GetOrders(c *gin.Context) {
	touristID := c.Param("touristId")

	query := `
		SELECT
			o.order_id,
			o.order_time,
			p.product_name,
			oi.quantity,
			oi.unit_price AS price
		FROM ` + "`Order`" + ` o
		JOIN OrderInfo oi ON o.order_id = oi.order_id
		JOIN Product p ON oi.product_id = p.product_id
		WHERE o.tourist_id = ?
		ORDER BY o.order_time DESC
	`

	rows, err := h.DB.Query(query, touristID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to fetch orders"})
		return
	}
	defer rows.Close()

	var orders []models.OrderHistoryRow
	for rows.Next() {
		var row models.OrderHistoryRow
		if err := rows.Scan(&row.OrderID, &row.OrderTime, &row.ProductName, &row.Quantity, &row.Price); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to scan order data"})
			return
		}
		orders = append(orders, row)
	}

	if orders == nil {
		orders = []models.OrderHistoryRow{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}
