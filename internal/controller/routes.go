package controller

import (
	"github.com/benbeisheim/hexchess-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api and the websocket endpoint under /ws.
func SetupRoutes(app *fiber.App, gameController *GameController, wsController *WebSocketController, wsConfig websocket.Config) {
	app.Get("/ws/game/:gameId",
		middleware.EnsurePlayerID(),
		middleware.WebSocketUpgrade(wsController.gameService.HasGame),
		websocket.New(wsController.HandleConnection, wsConfig),
	)

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/restore", gameController.RestoreGame)
	gameRoutes.Get("/open", gameController.OpenGames)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)
	gameRoutes.Get("/:gameId/moves", gameController.LegalMoves)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/surrender", gameController.Surrender)
	gameRoutes.Get("/:gameId/history/:moveIndex", gameController.PositionAt)
}
