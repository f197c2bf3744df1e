package handlers

import (
	"errors"

	"github.com/carepoint/carepoint-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps service sentinels onto HTTP statuses. Anything
// unrecognized is a server error with the supplied fallback message.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrGoalNotFound), errors.Is(err, services.ErrReminderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, services.ErrGoalExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallback,
		})
	}
}
