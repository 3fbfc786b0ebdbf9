package handlers

import (
	"battle-arena-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App, sessions *services.SessionService) {
	app.Post("/game/session", func(c *fiber.Ctx) error {
		type Req struct {
			PlayerID    string `json:"player_id"`
			CharacterID string `json:"character_id"`
			MapID       string `json:"map_id"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.PlayerID == "" || req.CharacterID == "" || req.MapID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player_id, character_id and map_id are required",
			})
		}

		sess, err := sessions.Create(req.PlayerID, req.CharacterID, req.MapID)
		if err != nil {
			return fail(c, "failed to create session", err)
		}
		return c.Status(fiber.StatusCreated).JSON(sess)
	})

	// Complete session: the progression pipeline entry point.
	app.Put("/game/session/:id", func(c *fiber.Ctx) error {
		var outcome services.MatchOutcome
		if err := c.BodyParser(&outcome); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if outcome.Score < 0 || outcome.EnemiesDefeated < 0 || outcome.Duration < 0 ||
			outcome.AmmoUsed < 0 || outcome.AbilityUses < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "outcome fields must be non-negative",
			})
		}

		summary, err := sessions.Complete(c.Params("id"), outcome)
		if err != nil {
			return fail(c, "session completion failed", err)
		}
		return c.JSON(summary)
	})

	app.Get("/game/sessions/:player_id", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		list, err := sessions.ByPlayer(c.Params("player_id"), limit)
		if err != nil {
			return fail(c, "failed to list sessions", err)
		}
		return c.JSON(list)
	})
}
