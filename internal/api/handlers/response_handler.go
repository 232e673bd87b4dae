package handlers

import (
	"errors"
	"restaurant-directory/domain"
	"restaurant-directory/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// failure maps a service error onto its status code. Unexpected errors are logged and answered with
// the generic message only.
func failure(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRestaurantNotFound), errors.Is(err, domain.ErrMenuNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrInvalidImageFormat),
		errors.Is(err, domain.ErrMissingUploadFields),
		errors.Is(err, domain.ErrInvalidChatMessages):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}

	zap.S().Errorw(message, "method", c.Method(), "path", c.Path(), "error", err)
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, nil)
}
