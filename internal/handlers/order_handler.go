package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cakeshop/internal/middleware"
	"cakeshop/internal/services"
	"cakeshop/internal/validation"
)

// OrderHandler handles checkout and HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	checkout *services.CheckoutService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, checkout *services.CheckoutService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		checkout: checkout,
		validate: validation.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers checkout and the caller's order history.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Post("/checkout", requireAuth, h.HandleCheckout)

	orderRoutes := router.Group("/orders", requireAuth)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// RegisterAdminRoutes registers order management on an admin-only router.
func (h *OrderHandler) RegisterAdminRoutes(admin fiber.Router) {
	orderRoutes := admin.Group("/orders")
	orderRoutes.Get("/", h.HandleAdminGetOrders)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleCheckout places an order for the caller's cart.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req services.CheckoutRequest
	if err := bindBody(c, nil, &req); err != nil {
		return respondError(c, h.logger, "Checkout failed", err)
	}
	order, err := h.checkout.Checkout(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.logger, "Checkout failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// HandleGetOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListUserOrders(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the caller's orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetUserOrder(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// HandleAdminGetOrders lists every order, optionally filtered by ?search=.
func (h *OrderHandler) HandleAdminGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// StatusRequest changes the status of an order or a user.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, h.logger, "Could not update order status", err)
	}
	order, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, h.logger, "Could not update order status", err)
	}
	return c.JSON(order)
}
