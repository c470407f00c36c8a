package services

import (
	"context"
	"errors"
	"fmt"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
)

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 99

func validQuantity(quantity int) bool {
	return quantity >= 1 && quantity <= MaxLineQuantity
}

// CartService keeps one line per product in a user's cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Summary returns the cart with its totals.
func (s *CartService) Summary(ctx context.Context, userID string) (*models.CartSummary, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(items), nil
}

// AddItem adds quantity units of a product. A product already in the cart
// has its quantity increased, up to MaxLineQuantity; otherwise its name,
// price and image are captured on a new line.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.CartSummary, error) {
	if !validQuantity(quantity) {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.add(ctx, userID, product, quantity); err != nil {
		return nil, err
	}
	return s.Summary(ctx, userID)
}

func (s *CartService) add(ctx context.Context, userID string, product *models.Product, quantity int) error {
	item, err := s.cartRepo.GetItem(ctx, userID, product.ID)
	switch {
	case err == nil:
		if item.Quantity > MaxLineQuantity-quantity {
			return fmt.Errorf("%s already has %d in the cart: %w", product.Name, item.Quantity, ErrInvalidQuantity)
		}
		item.Quantity += quantity
	case errors.Is(err, repositories.ErrNotFound):
		item = newCartItem(userID, product, quantity)
	default:
		return err
	}
	return s.cartRepo.Save(ctx, item)
}

func newCartItem(userID string, product *models.Product, quantity int) *models.CartItem {
	return &models.CartItem{
		UserID:      userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		Image:       product.Image,
	}
}

// UpdateQuantity sets the quantity of a cart line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartSummary, error) {
	if !validQuantity(quantity) {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.GetItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return s.Summary(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.CartSummary, error) {
	if err := s.cartRepo.Delete(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Summary(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.cartRepo.Clear(ctx, userID)
}

// Sync merges a client-held cart into the stored one by product id. When a
// product is on both sides the larger quantity wins, so repeating a sync
// changes nothing. Unknown products and quantities outside 1..MaxLineQuantity
// are skipped.
func (s *CartService) Sync(ctx context.Context, userID string, lines []models.CartLine) (*models.CartSummary, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]*models.CartItem, len(items))
	for i := range items {
		byProduct[items[i].ProductID] = &items[i]
	}

	for _, line := range lines {
		if !validQuantity(line.Quantity) || line.ProductID == "" {
			continue
		}
		if item, ok := byProduct[line.ProductID]; ok {
			if line.Quantity <= item.Quantity {
				continue
			}
			item.Quantity = line.Quantity
			if err := s.cartRepo.Save(ctx, item); err != nil {
				return nil, err
			}
			continue
		}

		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, err
		}
		item := newCartItem(userID, product, line.Quantity)
		if err := s.cartRepo.Save(ctx, item); err != nil {
			return nil, err
		}
		byProduct[item.ProductID] = item
	}
	return s.Summary(ctx, userID)
}
