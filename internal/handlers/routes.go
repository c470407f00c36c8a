package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cakeshop/internal/middleware"
)

// Handlers groups every HTTP handler of the storefront API.
type Handlers struct {
	Auth     *AuthHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Order    *OrderHandler
	Admin    *AdminHandler
}

// RegisterRoutes mounts the API on router. requireAuth guards customer
// routes; /admin additionally requires the admin role.
func RegisterRoutes(router fiber.Router, h Handlers, requireAuth fiber.Handler) {
	h.Auth.RegisterRoutes(router, requireAuth)
	h.Product.RegisterRoutes(router)
	h.Cart.RegisterRoutes(router, requireAuth)
	h.Wishlist.RegisterRoutes(router, requireAuth)
	h.Order.RegisterRoutes(router, requireAuth)

	admin := router.Group("/admin", requireAuth, middleware.AdminRequired())
	h.Product.RegisterAdminRoutes(admin)
	h.Order.RegisterAdminRoutes(admin)
	h.Admin.RegisterRoutes(admin)
}
