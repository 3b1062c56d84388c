package controller

import (
	"strconv"

	"github.com/benbeisheim/hexchess-backend/internal/middleware"
	"github.com/benbeisheim/hexchess-backend/internal/model"
	"github.com/benbeisheim/hexchess-backend/internal/service"
	"github.com/benbeisheim/hexchess-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Public bool `json:"public"`
}

type restoreGameRequest struct {
	Public   bool           `json:"public"`
	GameSave model.Snapshot `json:"gameSave"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, err)
		}
	}

	view, err := gc.gameService.CreateGame(middleware.PlayerID(c), req.Public)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": view.ID,
		"game":    view,
	})
}

func (gc *GameController) RestoreGame(c *fiber.Ctx) error {
	var req restoreGameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	view, err := gc.gameService.RestoreGame(middleware.PlayerID(c), req.Public, req.GameSave)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game restored",
		"game_id": view.ID,
		"game":    view,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	side, err := gc.gameService.JoinGame(c.Params("gameId"), middleware.PlayerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   side,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	view, err := gc.gameService.GetGame(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(c.Params("gameId"), middleware.PlayerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// OpenGames lists public games waiting for an opponent.
func (gc *GameController) OpenGames(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	return c.JSON(fiber.Map{
		"games": gc.gameService.OpenGames(limit),
	})
}

// LegalMoves answers the destinations of the piece on ?from=.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from, err := model.ParseNotation(c.Query("from"))
	if err != nil {
		return respondError(c, err)
	}

	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return respondError(c, err)
	}
	cells := make([]string, len(moves))
	for i, m := range moves {
		cells[i] = m.Notation()
	}
	return c.JSON(fiber.Map{
		"from":  from.Notation(),
		"moves": moves,
		"cells": cells,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move ws.MovePayload
	if err := c.BodyParser(&move); err != nil {
		return bodyError(c, err)
	}

	gameID := c.Params("gameId")
	if err := gc.gameService.HandleMove(gameID, middleware.PlayerID(c), move); err != nil {
		return respondError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Surrender(c *fiber.Ctx) error {
	if err := gc.gameService.Surrender(c.Params("gameId"), middleware.PlayerID(c)); err != nil {
		return respondError(c, err)
	}
	return gc.GetGameState(c)
}

// PositionAt returns the game as it stood after :moveIndex plies.
func (gc *GameController) PositionAt(c *fiber.Ctx) error {
	moveIndex, err := strconv.Atoi(c.Params("moveIndex"))
	if err != nil {
		return badRequest(c, err)
	}

	snapshot, err := gc.gameService.PositionAt(c.Params("gameId"), moveIndex)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(snapshot)
}
