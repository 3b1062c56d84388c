package service

import (
	"fmt"
	"log"

	"github.com/benbeisheim/hexchess-backend/internal/model"
	"github.com/benbeisheim/hexchess-backend/internal/ws"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(playerID string, public bool) (GameView, error) {
	gameID := uuid.New().String()

	session, err := gs.gameManager.CreateGame(gameID, playerID, public)
	if err != nil {
		return GameView{}, fmt.Errorf("failed to create game: %w", err)
	}
	log.Printf("game %s created by %s (public=%t)", gameID, playerID, public)
	return session.View(), nil
}

func (gs *GameService) RestoreGame(playerID string, public bool, snapshot model.Snapshot) (GameView, error) {
	gameID := uuid.New().String()

	session, err := gs.gameManager.RestoreGame(gameID, playerID, public, snapshot)
	if err != nil {
		return GameView{}, fmt.Errorf("failed to restore game: %w", err)
	}
	log.Printf("game %s restored by %s in state %s", gameID, playerID, snapshot.State)
	return session.View(), nil
}

func (gs *GameService) JoinGame(gameID, playerID string) (model.PieceSide, error) {
	side, err := gs.gameManager.AddPlayerToGame(gameID, playerID)
	if err != nil {
		return "", err
	}
	log.Printf("game %s: player %s seated as %s", gameID, playerID, side)
	gs.broadcast(gameID)
	return side, nil
}

func (gs *GameService) GetGame(gameID string) (GameView, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameView{}, err
	}
	return session.View(), nil
}

// HasGame reports whether gameID is hosted.
func (gs *GameService) HasGame(gameID string) bool {
	_, err := gs.gameManager.GetGame(gameID)
	return err == nil
}

func (gs *GameService) LegalMoves(gameID string, from model.Coordinate) ([]model.Coordinate, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return session.LegalMoves(from)
}

func (gs *GameService) PositionAt(gameID string, moveIndex int) (model.Snapshot, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return session.PositionAt(moveIndex)
}

func (gs *GameService) HandleMove(gameID, playerID string, move ws.MovePayload) error {
	from, to, promotion, err := move.Command()
	if err != nil {
		return err
	}
	if err := gs.gameManager.MakeMove(gameID, playerID, from, to, promotion); err != nil {
		return err
	}
	gs.broadcast(gameID)
	return nil
}

func (gs *GameService) Surrender(gameID, playerID string) error {
	if err := gs.gameManager.Surrender(gameID, playerID); err != nil {
		return err
	}
	log.Printf("game %s: player %s surrendered", gameID, playerID)
	gs.broadcast(gameID)
	return nil
}

func (gs *GameService) DeleteGame(gameID, playerID string) error {
	if err := gs.gameManager.DeleteGame(gameID, playerID); err != nil {
		return err
	}
	log.Printf("game %s deleted by %s", gameID, playerID)
	return nil
}

func (gs *GameService) OpenGames(limit int) []LobbyEntry {
	return gs.gameManager.OpenGames(limit)
}

// RegisterConnection attaches conn to the game and sends it the current state.
func (gs *GameService) RegisterConnection(gameID, playerID string, conn Conn) (*Session, error) {
	session, err := gs.gameManager.RegisterConnection(gameID, playerID, conn)
	if err != nil {
		return nil, err
	}
	if err := sendState(session, conn); err != nil {
		session.unregisterConnection(playerID, conn)
		return nil, fmt.Errorf("send initial state: %w", err)
	}
	return session, nil
}

func sendState(session *Session, conn Conn) error {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, session.View())
	if err != nil {
		return err
	}
	return session.Send(conn, msg)
}

func (gs *GameService) UnregisterConnection(gameID, playerID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) broadcast(gameID string) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.Broadcast()
}
