package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cakeshop/internal/models"
	"cakeshop/internal/services"
)

func deliveryAddress() models.Address {
	return models.Address{
		FullName: "Asha Menon",
		Mobile:   "9876543210",
		House:    "12B",
		Street:   "MG Road",
		City:     "Kochi",
		Pincode:  "682001",
		State:    "Kerala",
	}
}

func cardCheckout() services.CheckoutRequest {
	return services.CheckoutRequest{
		PaymentMethod: "card",
		Card: &services.CardDetails{
			Number:     "4111 1111 1111 1234",
			Expiry:     "09/28",
			CVV:        "123",
			NameOnCard: "Asha Menon",
		},
		Address: deliveryAddress(),
	}
}

func TestCheckoutService_Validate(t *testing.T) {
	service := services.NewCheckoutService(new(MockCartRepository), new(MockOrderRepository), nil, zap.NewNop())

	assert.NoError(t, service.Validate(cardCheckout()))

	req := cardCheckout()
	req.Card.Number = "4111 1111"
	req.Card.Expiry = "13/28"
	req.Card.CVV = "12"
	req.Card.NameOnCard = "   "
	req.Address.Pincode = "123"
	err := service.Validate(req)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"card.number":     "Card number must be 16 digits",
		"card.expiry":     "Expiry must be MM/YY",
		"card.cvv":        "CVV must be 3 or 4 digits",
		"card.nameOnCard": "Must not be blank",
		"address.pincode": "Invalid pincode",
	}, verr.Fields)

	upi := services.CheckoutRequest{PaymentMethod: "upi", UPIID: "asha", Address: deliveryAddress()}
	require.ErrorAs(t, service.Validate(upi), &verr)
	assert.Equal(t, map[string]string{"upiId": "Enter a valid UPI ID"}, verr.Fields)

	missing := services.CheckoutRequest{PaymentMethod: "card", Address: deliveryAddress()}
	require.ErrorAs(t, service.Validate(missing), &verr)
	assert.Equal(t, "Required", verr.Fields["card"])

	pasted := cardCheckout()
	pasted.Card.Number = "4111\t1111\u00a01111 1234"
	assert.NoError(t, service.Validate(pasted))

	bogus := services.CheckoutRequest{PaymentMethod: "cash", Address: deliveryAddress()}
	require.ErrorAs(t, service.Validate(bogus), &verr)
	assert.Contains(t, verr.Fields, "paymentMethod")
}

func TestCheckoutService_Checkout(t *testing.T) {
	ctx := context.Background()
	cartItems := []models.CartItem{
		{ProductID: "p1", ProductName: "Black Forest", Price: 499.99, Quantity: 2, Image: "bf.jpg"},
		{ProductID: "p2", ProductName: "Truffle", Price: 599, Quantity: 1},
	}

	t.Run("card order", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		orderRepo := new(MockOrderRepository)
		publisher := new(MockPublisher)
		service := services.NewCheckoutService(cartRepo, orderRepo, publisher, zap.NewNop())

		cartRepo.On("ListByUser", ctx, "u1").Return(cartItems, nil).Once()
		orderRepo.On("Create", ctx, mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o1"
		}).Return(nil).Once()
		cartRepo.On("Clear", ctx, "u1").Return(nil).Once()
		publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e models.OrderEvent) bool {
			return e.Type == models.OrderEventCreated && e.OrderID == "o1" && e.TotalAmount == 1598.98
		})).Return(nil).Once()

		order, err := service.Checkout(ctx, "u1", cardCheckout())
		require.NoError(t, err)
		assert.Equal(t, 1598.98, order.TotalAmount)
		assert.Equal(t, models.OrderStatusProcessing, order.Status)
		assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)
		assert.Equal(t, "card ****1234", order.PaymentReference)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, "Black Forest", order.Items[0].ProductName)
		cartRepo.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("upi order survives clear and publish failures", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		orderRepo := new(MockOrderRepository)
		publisher := new(MockPublisher)
		service := services.NewCheckoutService(cartRepo, orderRepo, publisher, zap.NewNop())

		cartRepo.On("ListByUser", ctx, "u1").Return(cartItems[:1], nil).Once()
		orderRepo.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()
		cartRepo.On("Clear", ctx, "u1").Return(errors.New("db gone")).Once()
		publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		order, err := service.Checkout(ctx, "u1", services.CheckoutRequest{
			PaymentMethod: "UPI",
			UPIID:         "asha@okaxis",
			Address:       deliveryAddress(),
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentMethodUPI, order.PaymentMethod)
		assert.Equal(t, "asha@okaxis", order.PaymentReference)
	})

	t.Run("empty cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		orderRepo := new(MockOrderRepository)
		service := services.NewCheckoutService(cartRepo, orderRepo, nil, zap.NewNop())

		cartRepo.On("ListByUser", ctx, "u1").Return([]models.CartItem{}, nil).Once()

		_, err := service.Checkout(ctx, "u1", cardCheckout())
		assert.ErrorIs(t, err, services.ErrEmptyCart)
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid payment never reads the cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		service := services.NewCheckoutService(cartRepo, new(MockOrderRepository), nil, zap.NewNop())

		req := cardCheckout()
		req.Card.CVV = ""
		_, err := service.Checkout(ctx, "u1", req)
		var verr *services.ValidationError
		assert.ErrorAs(t, err, &verr)
		cartRepo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})
}
