package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
	"cakeshop/internal/validation"
)

// CardDetails are the card fields of the payment form. They are validated
// and then discarded; only a masked reference is kept on the order.
type CardDetails struct {
	Number     string `json:"number" validate:"required,cardnumber"`
	Expiry     string `json:"expiry" validate:"required,cardexpiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
	NameOnCard string `json:"nameOnCard" validate:"notblank"`
}

// CheckoutRequest is the payment and delivery form.
type CheckoutRequest struct {
	PaymentMethod string         `json:"paymentMethod" validate:"required,oneof=card upi"`
	Card          *CardDetails   `json:"card,omitempty" validate:"-"`
	UPIID         string         `json:"upiId,omitempty" validate:"-"`
	Address       models.Address `json:"address"`
}

// CheckoutService turns a cart into an order.
type CheckoutService struct {
	cartRepo  repositories.CartRepository
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewCheckoutService creates a CheckoutService. publisher may be nil.
func NewCheckoutService(cartRepo repositories.CartRepository, orderRepo repositories.OrderRepository, publisher EventPublisher, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		publisher: publisher,
		validate:  validation.New(),
		logger:    logger,
	}
}

// Validate checks the whole form and reports every invalid field at once.
func (s *CheckoutService) Validate(req CheckoutRequest) error {
	fields := make(map[string]string)
	if err := s.validate.Struct(req); err != nil {
		for k, v := range validation.FieldErrors(err) {
			fields[k] = v
		}
	}

	switch req.PaymentMethod {
	case models.PaymentMethodCard:
		if req.Card == nil {
			fields["card"] = "Required"
			break
		}
		if err := s.validate.Struct(req.Card); err != nil {
			for k, v := range validation.FieldErrors(err) {
				fields["card."+k] = v
			}
		}
	case models.PaymentMethodUPI:
		if err := s.validate.Var(strings.TrimSpace(req.UPIID), "required,upi"); err != nil {
			fields["upiId"] = "Enter a valid UPI ID"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Checkout places an order for everything in the user's cart. Once the order
// is stored the cart is emptied and an order.created event is published;
// failures of either step are logged and do not fail the checkout.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, req CheckoutRequest) (*models.Order, error) {
	req.PaymentMethod = strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	cartItems, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	summary := summarize(cartItems)
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:   ci.ProductID,
			ProductName: ci.ProductName,
			Price:       ci.Price,
			Quantity:    ci.Quantity,
			Image:       ci.Image,
		})
	}

	order := &models.Order{
		UserID:           userID,
		Items:            items,
		TotalAmount:      summary.TotalAmount,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    models.PaymentStatusCompleted,
		PaymentReference: paymentReference(req),
		Address:          req.Address,
		Status:           models.OrderStatusProcessing,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Float64("total", order.TotalAmount),
	)

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.logger.Error("failed to clear cart after checkout", zap.String("order_id", order.ID), zap.Error(err))
	}
	publishOrderEvent(ctx, s.publisher, s.logger, models.OrderEventCreated, order)
	return order, nil
}

// paymentReference identifies the payment without storing card data:
// "card ****1234" or the UPI id.
func paymentReference(req CheckoutRequest) string {
	if req.PaymentMethod == models.PaymentMethodUPI {
		return strings.TrimSpace(req.UPIID)
	}
	number := validation.StripWhitespace(req.Card.Number)
	return "card ****" + number[len(number)-4:]
}
