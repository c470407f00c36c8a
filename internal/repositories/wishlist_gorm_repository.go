package repositories

import (
	"context"
	"errors"
	"fmt"

	"cakeshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{db: db}
}

// ListByUser returns the saved products of a user, oldest first.
func (r *GORMWishlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	items := []models.WishlistItem{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist of user %s: %w", userID, err)
	}
	return items, nil
}

// GetItem returns the wishlist entry of a user for a product.
func (r *GORMWishlistRepository) GetItem(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.WithContext(ctx).First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist item for product %s %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist item for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create saves a new wishlist entry.
func (r *GORMWishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to add product %s to wishlist: %w", item.ProductID, err)
	}
	return nil
}

// Delete removes a product from a user's wishlist.
func (r *GORMWishlistRepository) Delete(ctx context.Context, userID, productID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove product %s from wishlist: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item for product %s %w", productID, ErrNotFound)
	}
	return nil
}

// Clear empties a user's wishlist.
func (r *GORMWishlistRepository) Clear(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear wishlist of user %s: %w", userID, err)
	}
	return nil
}
