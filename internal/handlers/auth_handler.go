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

// AuthHandler handles registration, login and the caller's profile.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validate:    validation.New(),
		logger:      logger,
	}
}

// RegisterRoutes registers the authentication and profile routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)

	me := router.Group("/me", requireAuth)
	me.Get("/", h.HandleGetProfile)
	me.Put("/address", h.HandleSaveAddress)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := bindBody(c, nil, &in); err != nil {
		return respondError(c, h.logger, "Registration failed", err)
	}

	user, err := h.authService.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.logger, "Registration failed", err)
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return respondError(c, h.logger, "Authentication failed", err)
	}

	res, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, "Authentication failed", err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   res.Token,
		"role":    res.Role,
		"user":    res.User,
	})
}

// HandleGetProfile returns the caller's account.
func (h *AuthHandler) HandleGetProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == services.AdminUserID {
		return c.JSON(fiber.Map{"id": services.AdminUserID, "role": services.RoleAdmin})
	}
	user, err := h.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.logger, "Could not retrieve profile", err)
	}
	return c.JSON(user)
}

// HandleSaveAddress stores the caller's default delivery address.
func (h *AuthHandler) HandleSaveAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := bindBody(c, h.validate, &address); err != nil {
		return respondError(c, h.logger, "Could not save address", err)
	}
	user, err := h.userService.SaveAddress(c.UserContext(), middleware.UserID(c), address)
	if err != nil {
		return respondError(c, h.logger, "Could not save address", err)
	}
	return c.JSON(user)
}
