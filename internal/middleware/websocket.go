package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade lets a request through to the websocket handler only when it
// asks for an upgrade, names a game that gameExists reports as hosted, and
// carries a player id. Everything is refused before the upgrade so the client
// sees a plain HTTP status.
func WebSocketUpgrade(gameExists func(gameID string) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return reject(c, fiber.StatusBadRequest, "game id is required")
		}
		if !gameExists(gameID) {
			return reject(c, fiber.StatusNotFound, "game not found")
		}
		if PlayerID(c) == "" {
			return reject(c, fiber.StatusUnauthorized, "player id is required")
		}

		return c.Next()
	}
}
