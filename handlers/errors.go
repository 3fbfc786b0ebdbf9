package handlers

import (
	"errors"

	"battle-arena-system/services"
	"battle-arena-system/store"

	"github.com/gofiber/fiber/v2"
)

// fail maps service/store errors onto HTTP statuses:
// NotFound → 404, invalid state → 400/409, contention → 503, rest → 500.
func fail(c *fiber.Ctx, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrInsufficientCoins):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrSessionFinalized):
		status = fiber.StatusConflict
	case errors.Is(err, store.ErrConflict):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
		"cause": err.Error(),
	})
}
