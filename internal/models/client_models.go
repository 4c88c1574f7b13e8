package models

// Client represents a customer of the shop.
type Client struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name" binding:"required"`
	IDCard  string  `json:"id_card" db:"id_card" binding:"required"`
	Address string  `json:"address" db:"address"`
	Email   string  `json:"email" db:"email"`
	Phone   string  `json:"phone" db:"phone"`
	Picture *string `json:"picture,omitempty" db:"picture"`
}
