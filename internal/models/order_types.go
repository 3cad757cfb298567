package models

import "time"

// Order is the model for the 'Order' table (order header).
// Orders created through the app flow are immutable once written.
type Order struct {
	ID         int64     `json:"order_id" db:"order_id"`
	TouristID  int64     `json:"tourist_id" db:"tourist_id"`
	TotalPrice float64   `json:"total_price" db:"total_price"`
	OrderTime  time.Time `json:"order_time" db:"order_time"`
	Status     string    `json:"order_status" db:"order_status"`
	Comment    string    `json:"comment" db:"comment"`
}

// OrderInfo is the model for the 'OrderInfo' table (order line).
// UnitPrice is the price snapshot taken at order time; later product
// price changes never touch it.
type OrderInfo struct {
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
	Discount  float64 `json:"discount" db:"discount"`
	Comment   string  `json:"comment" db:"comment"`
}

// OrderHistoryRow is the flattened row returned by the order-history
// query (Order joined with OrderInfo and Product).
type OrderHistoryRow struct {
	OrderID     int64     `json:"order_id"`
	OrderTime   time.Time `json:"order_time"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
}
