package models

import "time"

// DashboardStats is the global KPI block shown on the manager dashboard.
// Sums are numeric zero when there is no underlying data.
type DashboardStats struct {
	TotalClients      int     `json:"total_clients"`
	TotalStaff        int     `json:"total_staff"`
	TotalRepairs      int     `json:"total_repairs"`
	TotalSales        float64 `json:"total_sales"`
	StockValue        float64 `json:"stock_value"`
	StockToSalesRatio float64 `json:"stock_to_sales_ratio"`
	OutOfStockCount   int     `json:"out_of_stock_count"`
}

// StatusCount is a repairs-per-status bucket.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// PriorityCount is a repairs-per-priority bucket.
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// DailySales is one day's sales total. Days without purchases are absent
// from the series; callers render the gaps as zero.
type DailySales struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// RecentPurchase is a purchase row for the dashboard feed, with a
// concatenated product-name summary.
type RecentPurchase struct {
	ID             int64     `json:"id"`
	ClientName     string    `json:"client_name"`
	PurchaseDate   time.Time `json:"purchase_date"`
	TotalPrice     float64   `json:"total_price"`
	ProductSummary string    `json:"product_summary"`
}

// RecentRepair is a repair row for the dashboard feed.
type RecentRepair struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	RequestDate time.Time `json:"request_date"`
	ClientName  string    `json:"client_name"`
}

// TechnicianStats is the technician-scoped dashboard: only work orders
// assigned to that technician are counted.
type TechnicianStats struct {
	ActiveAssigned int `json:"active_assigned"`
	Overdue        int `json:"overdue"`
	TotalCompleted int `json:"total_completed"`
}

// InventoryStats is the inventory-associate-scoped dashboard.
type InventoryStats struct {
	SKUCount         int       `json:"sku_count"`
	TotalUnits       int       `json:"total_units"`
	LowStockCount    int       `json:"low_stock_count"`
	LowStockProducts []Product `json:"low_stock_products"`
}

// HistoryEvent is one entry of the merged purchase/repair feed.
type HistoryEvent struct {
	Type       string    `json:"type"` // "purchase" or "repair"
	ID         int64     `json:"id"`
	EventDate  time.Time `json:"event_date"`
	ClientName string    `json:"client_name"`
	Detail     string    `json:"detail"`
	StaffName  *string   `json:"staff_name,omitempty"`
	TotalPrice *float64  `json:"total_price,omitempty"`
}
