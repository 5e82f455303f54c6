package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/memorizer/internal/common"
)

type errorResponse struct {
	Message string `json:"message"`
}

// writeError maps service errors to HTTP statuses. Validation messages are
// safe to show; anything unrecognized collapses to a generic 500 so no
// internal detail reaches the caller.
func (s *Server) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: err.Error()})
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Message: "unauthorized"})
	case errors.Is(err, common.ErrorForbidden):
		return c.Status(fiber.StatusForbidden).JSON(errorResponse{Message: "access denied"})
	case errors.Is(err, common.ErrorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Message: "not found"})
	case errors.Is(err, common.ErrorAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Message: "a user with this email already exists"})
	default:
		s.logger.Error(c.UserContext(), "request failed", "error", err.Error(), "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Message: "internal server error"})
	}
}
