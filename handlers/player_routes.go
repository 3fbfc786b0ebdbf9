package handlers

import (
	"strings"

	"battle-arena-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, players *services.PlayerService) {
	app.Post("/players", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "username is required",
			})
		}

		player, err := players.Create(req.Username)
		if err != nil {
			return fail(c, "failed to create player", err)
		}
		return c.Status(fiber.StatusCreated).JSON(player)
	})

	app.Get("/players/:id", func(c *fiber.Ctx) error {
		player, err := players.Get(c.Params("id"))
		if err != nil {
			return fail(c, "player not found", err)
		}
		return c.JSON(player)
	})

	// Manual XP grant — runs the same ladder as session completion.
	app.Put("/players/:id/xp", func(c *fiber.Ctx) error {
		xp := c.QueryInt("xp", 0)
		if xp < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "xp must be non-negative",
			})
		}
		player, err := players.AddXP(c.Params("id"), int64(xp), "manual_grant")
		if err != nil {
			return fail(c, "XP grant failed", err)
		}
		return c.JSON(player)
	})

	app.Put("/players/:id/coins", func(c *fiber.Ctx) error {
		amount := c.QueryInt("amount", 0)
		player, err := players.AdjustCoins(c.Params("id"), int64(amount))
		if err != nil {
			return fail(c, "coin update failed", err)
		}
		return c.JSON(player)
	})
}
