package models

// Product represents a stocked item available for sale.
type Product struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name" binding:"required"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}
