package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cakeshop/internal/services"
	"cakeshop/internal/validation"
)

// AdminHandler serves user management and the dashboard.
type AdminHandler struct {
	users     *services.UserService
	dashboard *services.DashboardService
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewAdminHandler(users *services.UserService, dashboard *services.DashboardService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		users:     users,
		dashboard: dashboard,
		validate:  validation.New(),
		logger:    logger,
	}
}

// RegisterRoutes registers on a router already restricted to admins.
func (h *AdminHandler) RegisterRoutes(admin fiber.Router) {
	admin.Get("/dashboard", h.HandleDashboard)
	admin.Get("/users", h.HandleGetUsers)
	admin.Patch("/users/:id/status", h.HandleUpdateUserStatus)
}

func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, "Could not load dashboard", err)
	}
	return c.JSON(stats)
}

// HandleGetUsers lists users, optionally filtered by ?search=.
func (h *AdminHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve users", err)
	}
	return c.JSON(users)
}

// HandleUpdateUserStatus blocks or unblocks a user.
func (h *AdminHandler) HandleUpdateUserStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, h.logger, "Could not update user status", err)
	}
	user, err := h.users.SetStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, h.logger, "Could not update user status", err)
	}
	h.logger.Info("user status changed", zap.String("user_id", user.ID), zap.String("status", user.Status))
	return c.JSON(user)
}
