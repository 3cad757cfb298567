package models

import "time"

// ShopRevenue is the model for the 'ShopRevenue' table. Rows are unique
// per (shop_id, report_month); ReportMonth is always the first day of
// the month it covers.
type ShopRevenue struct {
	ShopID      int64     `json:"shop_id" db:"shop_id"`
	ReportMonth time.Time `json:"report_month" db:"report_month"`
	Revenue     float64   `json:"revenue" db:"revenue"`
	Comment     string    `json:"comment" db:"comment"`
}

// RevenueOverview is the aggregate returned to merchants: the sum of
// all recorded monthly revenue and how many months were recorded.
type RevenueOverview struct {
	TotalIncome float64 `json:"total_income"`
	TotalCount  int     `json:"total_count"`
}
