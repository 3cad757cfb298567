package models

// Shop is the model for the 'Shop' table (merchant account).
type Shop struct {
	ID       int64  `json:"id" db:"shop_id"`
	Name     string `json:"name" db:"shop_name"`
	Account  string `json:"account" db:"account"`
	Password string `json:"-" db:"password"`
}
