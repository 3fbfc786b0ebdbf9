package handlers

import (
	"battle-arena-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAchievementRoutes(app *fiber.App, achievements *services.AchievementService) {
	app.Get("/achievements", func(c *fiber.Ctx) error {
		return c.JSON(achievements.Definitions())
	})

	app.Get("/achievements/:player_id", func(c *fiber.Ctx) error {
		views, err := achievements.ForPlayer(c.Params("player_id"))
		if err != nil {
			return fail(c, "failed to list achievements", err)
		}
		return c.JSON(views)
	})

	// Manual unlock — idempotent per (player, achievement) pair.
	app.Post("/achievements/:player_id/:achievement_id", func(c *fiber.Ctx) error {
		inserted, err := achievements.Unlock(c.Params("player_id"), c.Params("achievement_id"))
		if err != nil {
			return fail(c, "unlock failed", err)
		}
		if !inserted {
			return c.JSON(fiber.Map{"message": "Achievement already unlocked"})
		}
		return c.JSON(fiber.Map{"message": "Achievement unlocked!"})
	})
}
