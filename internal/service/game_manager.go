package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/hexchess-backend/internal/model"
)

// GameManager is the registry of hosted games.
type GameManager struct {
	sessions map[string]*Session
	lobby    *Lobby
	mu       sync.RWMutex
	now      func() time.Time
}

func NewGameManager() *GameManager {
	return &GameManager{
		sessions: make(map[string]*Session),
		lobby:    NewLobby(),
		now:      time.Now,
	}
}

// CreateGame hosts a new game from the initial layout. Public games are listed
// in the lobby until both seats are taken.
func (gm *GameManager) CreateGame(gameID, playerID string, public bool) (*Session, error) {
	return gm.addSession(gameID, playerID, public, model.NewGame())
}

// RestoreGame hosts a game rebuilt from a saved snapshot.
func (gm *GameManager) RestoreGame(gameID, playerID string, public bool, snapshot model.Snapshot) (*Session, error) {
	game, err := model.FromSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return gm.addSession(gameID, playerID, public, game)
}

func (gm *GameManager) addSession(gameID, playerID string, public bool, game *model.Game) (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.sessions[gameID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	now := gm.now()
	session := newSession(gameID, playerID, public, game, now)
	gm.sessions[gameID] = session
	if public && !game.IsEnded() {
		gm.lobby.Add(LobbyEntry{GameID: gameID, CreatedBy: playerID, ListedAt: now})
	}
	return session, nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.sessions[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return session, nil
}

func (gm *GameManager) AddPlayerToGame(gameID, playerID string) (model.PieceSide, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	side, err := session.join(playerID, gm.now())
	if err != nil {
		return "", err
	}
	if session.Players().Full() {
		gm.lobby.Remove(gameID)
	}
	return side, nil
}

func (gm *GameManager) MakeMove(gameID, playerID string, from, to model.Coordinate, promotion model.PieceType) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := session.move(playerID, from, to, promotion, gm.now()); err != nil {
		return err
	}
	if session.IsEnded() {
		gm.lobby.Remove(gameID)
	}
	return nil
}

func (gm *GameManager) Surrender(gameID, playerID string) error {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := session.surrender(playerID, gm.now()); err != nil {
		return err
	}
	gm.lobby.Remove(gameID)
	return nil
}

// DeleteGame stops hosting a game and disconnects its watchers. Only the
// player who created it may do so.
func (gm *GameManager) DeleteGame(gameID, playerID string) error {
	gm.mu.Lock()
	session, exists := gm.sessions[gameID]
	if !exists {
		gm.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if session.CreatedBy != playerID {
		gm.mu.Unlock()
		return ErrNotCreator
	}
	delete(gm.sessions, gameID)
	gm.mu.Unlock()

	gm.lobby.Remove(gameID)
	session.closeAll()
	return nil
}

// OpenGames lists public games waiting for an opponent, oldest first.
func (gm *GameManager) OpenGames(limit int) []LobbyEntry {
	return gm.lobby.List(limit)
}

func (gm *GameManager) RegisterConnection(gameID, playerID string, conn Conn) (*Session, error) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := session.registerConnection(playerID, conn); err != nil {
		return nil, err
	}
	return session, nil
}

func (gm *GameManager) UnregisterConnection(gameID, playerID string, conn Conn) {
	session, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	session.unregisterConnection(playerID, conn)
}
