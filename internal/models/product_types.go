package models

// Product is the model for the 'Product' table (tickets and goods).
type Product struct {
	ID             int64   `json:"product_id" db:"product_id"`
	Name           string  `json:"product_name" db:"product_name"`
	UnitPrice      float64 `json:"unit_price" db:"unit_price"`
	RemainingStock int     `json:"remaining_stock" db:"remaining_stock"`
}
