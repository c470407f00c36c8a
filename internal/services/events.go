package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cakeshop/internal/models"
)

// EventPublisher sends order events to the message broker.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event models.OrderEvent) error
}

// publishOrderEvent is best effort: a nil publisher or a failed publish is
// logged and never fails the caller.
func publishOrderEvent(ctx context.Context, publisher EventPublisher, logger *zap.Logger, eventType string, order *models.Order) {
	if publisher == nil {
		logger.Debug("event publisher disabled, skipping order event", zap.String("type", eventType), zap.String("order_id", order.ID))
		return
	}
	event := models.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("failed to publish order event", zap.String("type", eventType), zap.String("order_id", order.ID), zap.Error(err))
	}
}
