package models

// Tourist is the model for the 'Tourist' table.
// Passwords are stored and compared as plain strings; that matches the
// deployed login flow and is not something this service hardens.
type Tourist struct {
	ID            int64   `json:"id" db:"tourist_id"`
	Name          string  `json:"name" db:"name"`
	Phone         string  `json:"phone" db:"phone"`
	MemberLevel   int     `json:"level" db:"member_level"`
	Password      string  `json:"-" db:"password"`
	TotalSpending float64 `json:"spending" db:"total_spending"`
}
