package models

import "time"

// Purchase represents a completed sale. TotalPrice is computed by the
// backend at creation time and never recomputed afterwards.
type Purchase struct {
	ID           int64     `json:"id" db:"id"`
	ClientID     int64     `json:"client_id" db:"client_id"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
	TotalPrice   float64   `json:"total_price" db:"total_price"`
}

// PurchaseItem is one line of a purchase. PriceAtPurchase is a snapshot of
// the product price at sale time; later price changes never touch it.
// ProductID is nullable so historical lines survive product deletion.
type PurchaseItem struct {
	ID                int64   `json:"id" db:"id"`
	PurchaseID        int64   `json:"purchase_id" db:"purchase_id"`
	ProductID         *int64  `json:"product_id,omitempty" db:"product_id"`
	QuantityPurchased int     `json:"quantity_purchased" db:"quantity_purchased"`
	PriceAtPurchase   float64 `json:"price_at_purchase" db:"price_at_purchase"`
}

// ClientPurchase is a purchase as shown in a client's history panel, with a
// concatenated "qty x product" summary of its lines.
type ClientPurchase struct {
	ID             int64     `json:"id"`
	PurchaseDate   time.Time `json:"purchase_date"`
	TotalPrice     float64   `json:"total_price"`
	ProductSummary string    `json:"product_summary"`
}
