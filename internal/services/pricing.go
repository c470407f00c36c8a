package services

import (
	"github.com/shopspring/decimal"

	"cakeshop/internal/models"
)

func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// summarize computes cart totals. There is no tax or delivery fee, so the
// total equals the subtotal.
func summarize(items []models.CartItem) *models.CartSummary {
	subtotal := decimal.Zero
	count := 0
	for _, item := range items {
		subtotal = subtotal.Add(lineTotal(item.Price, item.Quantity))
		count += item.Quantity
	}
	if items == nil {
		items = []models.CartItem{}
	}
	total := subtotal.Round(2).InexactFloat64()
	return &models.CartSummary{
		Items:       items,
		TotalItems:  count,
		Subtotal:    total,
		TotalAmount: total,
	}
}

// revenue sums the totals of orders that were not canceled.
func revenue(orders []models.Order) float64 {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == models.OrderStatusCanceled {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(o.TotalAmount))
	}
	return sum.Round(2).InexactFloat64()
}
