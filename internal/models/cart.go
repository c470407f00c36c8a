package models

import "time"

// CartItem is one product line of a user's cart. Name, price and image are
// captured when the product is first added.
type CartItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	ProductID   string    `json:"productId" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	ProductName string    `json:"productName" gorm:"type:varchar(100)"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image" gorm:"type:varchar(500)"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CartSummary is the cart as returned to clients, with its totals.
type CartSummary struct {
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	Subtotal    float64    `json:"subtotal"`
	TotalAmount float64    `json:"totalAmount"`
}

// CartLine is a client-held cart entry submitted for reconciliation.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
