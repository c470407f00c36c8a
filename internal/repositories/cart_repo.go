package repositories

import (
	"context"

	"cakeshop/internal/models"
)

// CartRepository defines the interface for cart data access. A cart holds at
// most one line per product.
type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	GetItem(ctx context.Context, userID, productID string) (*models.CartItem, error)
	Save(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
