package model

import (
	"fmt"
	"strings"
)

type PieceType string

const (
	Bishop PieceType = "bishop"
	King   PieceType = "king"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
)

// PieceTypes lists every piece type in declaration order.
var PieceTypes = []PieceType{Bishop, King, Knight, Pawn, Queen, Rook}

// Notation returns the letter used in move notation. Pawns have none.
func (p PieceType) Notation() string {
	switch p {
	case Bishop:
		return "B"
	case King:
		return "K"
	case Knight:
		return "N"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	}
	return ""
}

// ParsePieceType accepts a type name ("queen") or its letter ("Q", "P" for pawn).
func ParsePieceType(s string) (PieceType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, t := range PieceTypes {
		if v == string(t) {
			return t, nil
		}
	}
	switch v {
	case "b":
		return Bishop, nil
	case "k":
		return King, nil
	case "n":
		return Knight, nil
	case "p":
		return Pawn, nil
	case "q":
		return Queen, nil
	case "r":
		return Rook, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPieceType, s)
}

type PieceSide string

const (
	White PieceSide = "white"
	Black PieceSide = "black"
)

func (s PieceSide) Opposite() PieceSide {
	if s == White {
		return Black
	}
	return White
}

// Piece is a value: copying a Piece clones it.
type Piece struct {
	Type       PieceType  `json:"type"`
	Side       PieceSide  `json:"side"`
	Coordinate Coordinate `json:"coordinate"`
}

func NewPiece(t PieceType, side PieceSide, c Coordinate) Piece {
	return Piece{Type: t, Side: side, Coordinate: c}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Side, p.Type, p.Coordinate)
}

// letter is the single-character board glyph: upper case for white, lower for black.
func (p Piece) letter() string {
	l := p.Type.Notation()
	if p.Type == Pawn {
		l = "P"
	}
	if p.Side == Black {
		return strings.ToLower(l)
	}
	return l
}

// reflectIfBlack mirrors a vector authored for white onto black's half of the board.
func (p Piece) reflectIfBlack(c Coordinate) Coordinate {
	if p.Side == White {
		return c
	}
	return c.HorizontalReflection()
}

// Filter selects whether generated moves are checked against self-check.
// Attack detection uses Reachable so the recursion stops after one level.
type Filter bool

const (
	Reachable Filter = false
	Legal     Filter = true
)

// AllPossibleMoves returns every destination of p on board. With Legal, moves
// that would leave p's own King attacked are discarded.
func (p Piece) AllPossibleMoves(board Board, lastMove *LastMove, filter Filter) []Coordinate {
	if p.Type == Pawn {
		return p.pawnMoves(board, lastMove, filter)
	}
	return p.extractPlayableMoves(movementTables[p.Type], board, lastMove, filter)
}

// IsMoveValid reports whether to is a legal destination for p.
func (p Piece) IsMoveValid(to Coordinate, board Board, lastMove *LastMove) bool {
	for _, c := range p.AllPossibleMoves(board, lastMove, Legal) {
		if c == to {
			return true
		}
	}
	return false
}

// extractPlayableMoves casts one ray per movement, stopping at the board edge
// or the first occupied cell.
func (p Piece) extractPlayableMoves(movements []PossibleMovement, board Board, lastMove *LastMove, filter Filter) []Coordinate {
	var moves []Coordinate
	maxSteps := 2 * (SideLength - 1)
	for _, m := range movements {
		vector := p.reflectIfBlack(m.Vector)
		steps := min(m.MaxRange, maxSteps)
		c := p.Coordinate
		for i := 0; i < steps; i++ {
			c = c.Add(vector)
			if !c.OnBoard() {
				break
			}
			occupant, occupied := board.At(c)
			if occupied && occupant.Side == p.Side {
				break
			}
			if filter == Reachable || !p.causesSelfCheck(c, board, lastMove) {
				moves = append(moves, c)
			}
			if occupied {
				break
			}
		}
	}
	return moves
}

// causesSelfCheck simulates p moving to `to` on a cloned board and reports
// whether p's own King would then be attacked.
func (p Piece) causesSelfCheck(to Coordinate, board Board, lastMove *LastMove) bool {
	captured := to
	if p.Type == Pawn && p.isEnPassantDestination(to, board, lastMove) {
		captured = p.enPassantCaptureSquare(to)
	}
	simulated := make(Board, 0, len(board))
	for _, piece := range board {
		if piece.Coordinate == captured && piece != p {
			continue
		}
		if piece == p {
			piece.Coordinate = to
		}
		simulated = append(simulated, piece)
	}
	king, ok := simulated.King(p.Side)
	if !ok {
		return false
	}
	return king.IsCheck(simulated, &LastMove{From: p.Coordinate, To: to})
}

// IsCheck reports whether p is attacked by any opposing piece on board.
func (p Piece) IsCheck(board Board, lastMove *LastMove) bool {
	return board.IsAttacked(p.Coordinate, p.Side.Opposite(), lastMove)
}

// IsCheckMate reports whether p is attacked and its side has no legal move.
func (p Piece) IsCheckMate(board Board, lastMove *LastMove) bool {
	if !p.IsCheck(board, lastMove) {
		return false
	}
	return !board.HasLegalMove(p.Side, lastMove)
}
