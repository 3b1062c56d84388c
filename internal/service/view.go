package service

import (
	"time"

	"github.com/benbeisheim/hexchess-backend/internal/model"
)

type CapturedPieces struct {
	White []model.PieceType `json:"white"`
	Black []model.PieceType `json:"black"`
}

// GameView is what clients receive for a game, over REST and websocket alike.
type GameView struct {
	ID             string            `json:"id"`
	Players        Players           `json:"players"`
	Public         bool              `json:"public"`
	CreatedBy      string            `json:"createdBy"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Game           model.Snapshot    `json:"gameSave"`
	Moves          []model.Move      `json:"moves"`
	MoveHistory    model.MoveHistory `json:"moveHistory"`
	CapturedPieces CapturedPieces    `json:"capturedPieces"`
}
