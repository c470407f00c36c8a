package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
)

// OrderService handles business logic related to placed orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListUserOrders returns the orders of a user, newest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetUserOrder returns an order only to the user who placed it.
func (s *OrderService) GetUserOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrForbidden)
	}
	return order, nil
}

// ListOrders returns all orders, narrowed to those whose id, user id or
// status contains search (case-insensitive).
func (s *OrderService) ListOrders(ctx context.Context, search string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return orders, nil
	}
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), search) ||
			strings.Contains(strings.ToLower(o.UserID), search) ||
			strings.Contains(o.Status, search) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// ParseStatus matches an order status case-insensitively.
func ParseStatus(status string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case models.OrderStatusProcessing, models.OrderStatusSuccess, models.OrderStatusCanceled:
		return s, nil
	default:
		return "", fmt.Errorf("%w %q: want processing, success or canceled", ErrInvalidStatus, status)
	}
}

// UpdateOrderStatus moves an order to any of the known statuses, so an admin
// can reopen a completed or canceled order. Setting the current status again
// is a no-op and publishes nothing.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	next, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == next {
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	order.Status = next
	s.logger.Info("order status changed", zap.String("order_id", id), zap.String("status", next))
	publishOrderEvent(ctx, s.publisher, s.logger, models.OrderEventStatusChanged, order)
	return order, nil
}
