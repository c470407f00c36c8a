package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cakeshop/internal/middleware"
	"cakeshop/internal/services"
	"cakeshop/internal/validation"
)

// WishlistHandler handles HTTP requests for the caller's wishlist.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewWishlistHandler(service *services.WishlistService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validation.New(),
		logger:   logger,
	}
}

func (h *WishlistHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	wishlistRoutes := router.Group("/wishlist", requireAuth)
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/", h.HandleAdd)
	wishlistRoutes.Post("/move-all", h.HandleMoveAll)
	wishlistRoutes.Post("/sync", h.HandleSync)
	wishlistRoutes.Delete("/:productId", h.HandleRemove)
	wishlistRoutes.Post("/:productId/cart", h.HandleAddToCart)
}

type AddToWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type SyncWishlistRequest struct {
	ProductIDs []string `json:"productIds"`
}

func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve wishlist", err)
	}
	return c.JSON(items)
}

func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	var req AddToWishlistRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, h.logger, "Could not add to wishlist", err)
	}
	item, err := h.service.Add(c.UserContext(), middleware.UserID(c), req.ProductID)
	if err != nil {
		return respondError(c, h.logger, "Could not add to wishlist", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	if err := h.service.Remove(c.UserContext(), middleware.UserID(c), c.Params("productId")); err != nil {
		return respondError(c, h.logger, "Could not remove from wishlist", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WishlistHandler) HandleAddToCart(c *fiber.Ctx) error {
	summary, err := h.service.AddToCart(c.UserContext(), middleware.UserID(c), c.Params("productId"))
	if err != nil {
		return respondError(c, h.logger, "Could not add to cart", err)
	}
	return c.JSON(summary)
}

func (h *WishlistHandler) HandleMoveAll(c *fiber.Ctx) error {
	summary, err := h.service.MoveAllToCart(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Could not move wishlist to cart", err)
	}
	return c.JSON(summary)
}

func (h *WishlistHandler) HandleSync(c *fiber.Ctx) error {
	var req SyncWishlistRequest
	if err := bindBody(c, nil, &req); err != nil {
		return respondError(c, h.logger, "Could not sync wishlist", err)
	}
	items, err := h.service.Sync(c.UserContext(), middleware.UserID(c), req.ProductIDs)
	if err != nil {
		return respondError(c, h.logger, "Could not sync wishlist", err)
	}
	return c.JSON(items)
}
