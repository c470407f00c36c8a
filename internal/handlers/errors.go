package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cakeshop/internal/repositories"
	"cakeshop/internal/services"
	"cakeshop/internal/validation"
)

// bodyError marks a request body that could not be decoded.
type bodyError struct {
	err error
}

func (e *bodyError) Error() string { return e.err.Error() }

func (e *bodyError) Unwrap() error { return e.err }

// bindBody decodes the JSON body into dst and validates it when v is set.
func bindBody(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return &bodyError{err: err}
	}
	if v == nil {
		return nil
	}
	if err := v.Struct(dst); err != nil {
		return &services.ValidationError{Fields: validation.FieldErrors(err)}
	}
	return nil
}

// respondError maps service and repository errors to HTTP responses.
// Unexpected errors are logged and reported as 500.
func respondError(c *fiber.Ctx, logger *zap.Logger, message string, err error) error {
	var (
		verr *services.ValidationError
		berr *bodyError
	)
	switch {
	case errors.As(err, &berr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	}

	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		logger.Error(message, zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrUserBlocked), errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrDuplicateUser):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidStatus):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
