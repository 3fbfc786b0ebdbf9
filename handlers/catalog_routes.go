package handlers

import (
	"battle-arena-system/models"

	"github.com/gofiber/fiber/v2"
)

// Catalog routes serve the static reference tables: character roster,
// arena maps. No service layer needed — the data never mutates.
func SetupCatalogRoutes(app *fiber.App) {
	app.Get("/characters", func(c *fiber.Ctx) error {
		return c.JSON(models.Characters)
	})

	app.Get("/characters/:id", func(c *fiber.Ctx) error {
		char := models.FindCharacter(c.Params("id"))
		if char == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "character not found",
			})
		}
		return c.JSON(char)
	})

	app.Get("/maps", func(c *fiber.Ctx) error {
		return c.JSON(models.ArenaMaps)
	})
}
