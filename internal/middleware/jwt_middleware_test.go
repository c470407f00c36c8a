package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cakeshop/internal/config"
	"cakeshop/internal/middleware"
	"cakeshop/internal/services"
)

func setupApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	authService := services.NewAuthService(nil, config.AuthConfig{
		JWTSecret:     "middleware-secret",
		TokenTTL:      time.Hour,
		AdminEmail:    "admin@gmail.com",
		AdminPassword: "admin123",
	})

	app := fiber.New()
	protected := app.Group("/", middleware.AuthRequired(authService, zap.NewNop()))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c))
	})
	protected.Get("/admin", middleware.AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, authService
}

func TestAuthRequired(t *testing.T) {
	app, authService := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	res, err := authService.Login(t.Context(), "admin@gmail.com", "admin123")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+res.Token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequired(t *testing.T) {
	app, authService := setupApp(t)

	admin, err := authService.Login(t.Context(), "admin@gmail.com", "admin123")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin.Token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	customer := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "u1",
		"username": "asha",
		"role":     services.RoleUser,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := customer.SignedString([]byte("middleware-secret"))
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
