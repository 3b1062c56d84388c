package middleware

import (
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
)

// PlayerIDKey is the Locals key holding the caller's id.
const PlayerIDKey = "playerID"

const maxPlayerIDLength = 64

// PlayerID returns the id stored by EnsurePlayerID, or "" outside of it.
func PlayerID(c *fiber.Ctx) string {
	id, _ := c.Locals(PlayerIDKey).(string)
	return id
}

// EnsurePlayerID identifies the caller by the X-Player-ID header, falling back
// to the playerId query parameter for browser websockets, which cannot set
// headers.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get("X-Player-ID"))
		if id == "" {
			id = strings.TrimSpace(c.Query("playerId"))
		}

		switch {
		case id == "":
			return reject(c, fiber.StatusUnauthorized, "player id is required")
		case !validPlayerID(id):
			return reject(c, fiber.StatusBadRequest, "player id is malformed")
		}

		c.Locals(PlayerIDKey, id)
		return c.Next()
	}
}

func validPlayerID(id string) bool {
	if len(id) > maxPlayerIDLength {
		return false
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

func reject(c *fiber.Ctx, status int, reason string) error {
	return c.Status(status).JSON(fiber.Map{"error": reason})
}
