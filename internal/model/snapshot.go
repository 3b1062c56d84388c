package model

import (
	"fmt"
	"slices"
)

// Snapshot is the serialized form of a Game. FromSnapshot(g.Snapshot())
// yields a game equal to g.
type Snapshot struct {
	State    GameState `json:"state"`
	SideTurn PieceSide `json:"sideTurn"`
	LastMove *LastMove `json:"lastMove,omitempty"`
	Pieces   Board     `json:"pieces"`
	History  []Board   `json:"history"`
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state,
		SideTurn: g.sideTurn,
		LastMove: g.LastMove(),
		Pieces:   g.Pieces(),
		History:  g.History(),
	}
}

// FromSnapshot validates s and rebuilds the game it describes.
func FromSnapshot(s Snapshot) (*Game, error) {
	if _, err := ParseGameState(string(s.State)); err != nil {
		return nil, err
	}
	if s.SideTurn != White && s.SideTurn != Black {
		return nil, fmt.Errorf("%w: unknown side %q", ErrInvalidSnapshot, s.SideTurn)
	}
	if s.LastMove != nil && (!s.LastMove.From.OnBoard() || !s.LastMove.To.OnBoard()) {
		return nil, fmt.Errorf("%w: last move off the board", ErrInvalidSnapshot)
	}
	if err := validateBoard(s.Pieces); err != nil {
		return nil, err
	}
	for i, b := range s.History {
		if err := validateBoard(b); err != nil {
			return nil, fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	return FromExistingGame(s.State, s.SideTurn, s.LastMove, s.Pieces, s.History), nil
}

// validateBoard checks the invariants every position must hold: pieces on the
// board, one piece per cell and exactly one King per side.
func validateBoard(b Board) error {
	seen := make(map[Coordinate]bool, len(b))
	kings := map[PieceSide]int{}
	for _, p := range b {
		if p.Side != White && p.Side != Black {
			return fmt.Errorf("%w: unknown side %q", ErrInvalidSnapshot, p.Side)
		}
		if !slices.Contains(PieceTypes, p.Type) {
			return fmt.Errorf("%w: unknown piece type %q", ErrInvalidSnapshot, p.Type)
		}
		if !p.Coordinate.Valid() || !p.Coordinate.OnBoard() {
			return fmt.Errorf("%w: %s is off the board", ErrInvalidSnapshot, p)
		}
		if seen[p.Coordinate] {
			return fmt.Errorf("%w: two pieces on %s", ErrInvalidSnapshot, p.Coordinate.Notation())
		}
		seen[p.Coordinate] = true
		if p.Type == King {
			kings[p.Side]++
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: want one king per side, got white=%d black=%d", ErrInvalidSnapshot, kings[White], kings[Black])
	}
	return nil
}
