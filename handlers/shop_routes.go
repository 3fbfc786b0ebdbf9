package handlers

import (
	"battle-arena-system/models"
	"battle-arena-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupShopRoutes(app *fiber.App, shop *services.ShopService) {
	app.Get("/shop/items", func(c *fiber.Ctx) error {
		return c.JSON(models.ShopItems)
	})

	app.Get("/shop/weapons", func(c *fiber.Ctx) error {
		return c.JSON(models.ShopWeapons)
	})

	app.Post("/shop/purchase", func(c *fiber.Ctx) error {
		type Req struct {
			PlayerID string `json:"player_id"`
			ItemID   string `json:"item_id"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.PlayerID == "" || req.ItemID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player_id and item_id are required",
			})
		}

		item, err := shop.Purchase(req.PlayerID, req.ItemID)
		if err != nil {
			return fail(c, "purchase failed", err)
		}
		return c.JSON(fiber.Map{
			"message": "Item purchased successfully",
			"item":    item,
		})
	})

	app.Get("/shop/inventory/:player_id", func(c *fiber.Ctx) error {
		items, err := shop.Inventory(c.Params("player_id"))
		if err != nil {
			return fail(c, "failed to list inventory", err)
		}
		return c.JSON(items)
	})
}
