package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
)

// WishlistService manages saved products and moving them to the cart.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
	cart         *CartService
	logger       *zap.Logger
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository, cart *CartService, logger *zap.Logger) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		cart:         cart,
		logger:       logger,
	}
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.ListByUser(ctx, userID)
}

// Add saves a product. Saving a product twice returns the existing entry.
func (s *WishlistService) Add(ctx context.Context, userID, productID string) (*models.WishlistItem, error) {
	existing, err := s.wishlistRepo.GetItem(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	item := &models.WishlistItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Image:       product.Image,
	}
	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	return s.wishlistRepo.Delete(ctx, userID, productID)
}

// AddToCart puts one unit of a saved product in the cart. The product stays
// in the wishlist.
func (s *WishlistService) AddToCart(ctx context.Context, userID, productID string) (*models.CartSummary, error) {
	if _, err := s.wishlistRepo.GetItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.cart.AddItem(ctx, userID, productID, 1)
}

// MoveAllToCart adds one unit of every saved product to the cart and then
// empties the wishlist. Products removed from the catalog, or whose cart line
// is already full, are dropped.
func (s *WishlistService) MoveAllToCart(ctx context.Context, userID string) (*models.CartSummary, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				s.logger.Info("skipping removed product", zap.String("user_id", userID), zap.String("product_id", item.ProductID))
				continue
			}
			return nil, err
		}
		if err := s.cart.add(ctx, userID, product, 1); err != nil {
			if errors.Is(err, ErrInvalidQuantity) {
				s.logger.Info("cart line full, skipping", zap.String("user_id", userID), zap.String("product_id", item.ProductID))
				continue
			}
			return nil, err
		}
	}
	if err := s.wishlistRepo.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return s.cart.Summary(ctx, userID)
}

// Sync adds client-held product ids to the stored wishlist and returns the
// union. Unknown products are skipped.
func (s *WishlistService) Sync(ctx context.Context, userID string, productIDs []string) ([]models.WishlistItem, error) {
	for _, id := range productIDs {
		if id == "" {
			continue
		}
		if _, err := s.Add(ctx, userID, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, err
		}
	}
	return s.wishlistRepo.ListByUser(ctx, userID)
}
