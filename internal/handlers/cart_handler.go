package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cakeshop/internal/middleware"
	"cakeshop/internal/models"
	"cakeshop/internal/services"
	"cakeshop/internal/validation"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCartHandler(service *services.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validation.New(),
		logger:   logger,
	}
}

func (h *CartHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	cartRoutes := router.Group("/cart", requireAuth)
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Post("/sync", h.HandleSync)
}

// AddToCartRequest adds a product; quantity defaults to 1.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type SyncCartRequest struct {
	Items []models.CartLine `json:"items"`
}

func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve cart", err)
	}
	return c.JSON(summary)
}

func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, h.logger, "Could not add to cart", err)
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	summary, err := h.service.AddItem(c.UserContext(), middleware.UserID(c), req.ProductID, quantity)
	if err != nil {
		return respondError(c, h.logger, "Could not add to cart", err)
	}
	return c.JSON(summary)
}

func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateCartItemRequest
	if err := bindBody(c, nil, &req); err != nil {
		return respondError(c, h.logger, "Could not update cart", err)
	}
	summary, err := h.service.UpdateQuantity(c.UserContext(), middleware.UserID(c), c.Params("productId"), req.Quantity)
	if err != nil {
		return respondError(c, h.logger, "Could not update cart", err)
	}
	return c.JSON(summary)
}

func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	summary, err := h.service.RemoveItem(c.UserContext(), middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return respondError(c, h.logger, "Could not remove from cart", err)
	}
	return c.JSON(summary)
}

func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(c.UserContext(), middleware.UserID(c)); err != nil {
		return respondError(c, h.logger, "Could not clear cart", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSync merges a client-held cart into the stored cart.
func (h *CartHandler) HandleSync(c *fiber.Ctx) error {
	var req SyncCartRequest
	if err := bindBody(c, nil, &req); err != nil {
		return respondError(c, h.logger, "Could not sync cart", err)
	}
	summary, err := h.service.Sync(c.UserContext(), middleware.UserID(c), req.Items)
	if err != nil {
		return respondError(c, h.logger, "Could not sync cart", err)
	}
	return c.JSON(summary)
}
