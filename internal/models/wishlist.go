package models

import "time"

// WishlistItem is a product a user saved for later.
type WishlistItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product"`
	ProductID   string    `json:"productId" gorm:"type:varchar(36);uniqueIndex:idx_wishlist_user_product"`
	ProductName string    `json:"productName" gorm:"type:varchar(100)"`
	Price       float64   `json:"price"`
	Image       string    `json:"image" gorm:"type:varchar(500)"`
	CreatedAt   time.Time `json:"createdAt"`
}
