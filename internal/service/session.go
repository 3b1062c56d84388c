package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/benbeisheim/hexchess-backend/internal/model"
	"github.com/benbeisheim/hexchess-backend/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections watching a specific game
type connections struct {
	conns map[string]Conn // playerID -> connection
	mu    sync.RWMutex
}

// Session hosts one game: the engine state, the seated players and the
// connections watching it. The engine is only touched under mu.
type Session struct {
	ID        string
	Public    bool
	CreatedBy string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *model.Game
	players   Players
	updatedAt time.Time

	connections *connections
	// sendMu serializes writes; a websocket connection allows one writer.
	sendMu sync.Mutex
}

func newSession(id, createdBy string, public bool, game *model.Game, now time.Time) *Session {
	return &Session{
		ID:        id,
		Public:    public,
		CreatedBy: createdBy,
		CreatedAt: now,
		game:      game,
		updatedAt: now,
		connections: &connections{
			conns: make(map[string]Conn),
		},
	}
}

func (s *Session) View() GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() GameView {
	return GameView{
		ID:          s.ID,
		Players:     s.players,
		Public:      s.Public,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.updatedAt,
		Game:        s.game.Snapshot(),
		Moves:       s.game.Moves(),
		MoveHistory: s.game.MoveHistory(),
		CapturedPieces: CapturedPieces{
			White: s.game.CapturedPieceTypes(model.White),
			Black: s.game.CapturedPieceTypes(model.Black),
		},
	}
}

func (s *Session) Players() Players {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players
}

func (s *Session) IsEnded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.IsEnded()
}

func (s *Session) join(playerID string, now time.Time) (model.PieceSide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	side, err := s.players.seat(playerID)
	if err != nil {
		return "", err
	}
	s.updatedAt = now
	return side, nil
}

func (s *Session) move(playerID string, from, to model.Coordinate, promotion model.PieceType, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	side, ok := s.players.SideOf(playerID)
	if !ok {
		return ErrNotAPlayer
	}
	if s.game.IsEnded() {
		return fmt.Errorf("%w: state is %s", model.ErrGameOver, s.game.State())
	}
	if side != s.game.SideTurn() {
		return fmt.Errorf("%w: %s to play", ErrNotYourTurn, s.game.SideTurn())
	}
	if err := s.game.MovePiece(from, to, promotion); err != nil {
		return err
	}
	s.updatedAt = now
	return nil
}

func (s *Session) surrender(playerID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	side, ok := s.players.SideOf(playerID)
	if !ok {
		return ErrNotAPlayer
	}
	if err := s.game.Surrender(side); err != nil {
		return err
	}
	s.updatedAt = now
	return nil
}

func (s *Session) LegalMoves(from model.Coordinate) ([]model.Coordinate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.PossibleMoves(from)
}

// PositionAt rebuilds the game as it stood after moveIndex plies.
func (s *Session) PositionAt(moveIndex int) (model.Snapshot, error) {
	s.mu.Lock()
	positions := append(s.game.History(), s.game.Pieces())
	s.mu.Unlock()

	g, err := model.FromPreviousMove(positions, moveIndex)
	if err != nil {
		return model.Snapshot{}, err
	}
	return g.Snapshot(), nil
}

func (s *Session) registerConnection(playerID string, conn Conn) error {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.conns[playerID]; exists {
		return ErrAlreadyConnected
	}
	s.connections.conns[playerID] = conn
	return nil
}

// unregisterConnection drops conn only while it is still the player's current
// connection.
func (s *Session) unregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.conns[playerID]; exists && current == conn {
		delete(s.connections.conns, playerID)
	}
}

func (s *Session) connectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.conns)
}

// Send writes msg to conn, serialized with every other write of the session.
func (s *Session) Send(conn Conn, msg ws.Message) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return conn.WriteJSON(msg)
}

// Broadcast pushes the current view to every connection. Connections that
// fail to receive it are dropped.
func (s *Session) Broadcast() {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.View())
	if err != nil {
		log.Printf("game %s: %v", s.ID, err)
		return
	}

	s.connections.mu.RLock()
	active := make(map[string]Conn, len(s.connections.conns))
	for playerID, conn := range s.connections.conns {
		active[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := s.Send(conn, msg); err != nil {
			log.Printf("game %s: failed to send state to player %s: %v", s.ID, playerID, err)
			s.unregisterConnection(playerID, conn)
		}
	}
}

// closeAll disconnects every watcher.
func (s *Session) closeAll() {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	for playerID, conn := range s.connections.conns {
		if err := conn.Close(); err != nil {
			log.Printf("game %s: closing connection of player %s: %v", s.ID, playerID, err)
		}
		delete(s.connections.conns, playerID)
	}
}
