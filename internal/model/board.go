package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Board is the set of pieces on the board, in no particular order.
type Board []Piece

// Query selects pieces by type, side and coordinate. Zero fields match anything.
type Query struct {
	Type       PieceType
	Side       PieceSide
	Coordinate *Coordinate
}

func (q Query) matches(p Piece) bool {
	return (q.Type == "" || p.Type == q.Type) &&
		(q.Side == "" || p.Side == q.Side) &&
		(q.Coordinate == nil || p.Coordinate == *q.Coordinate)
}

func (q Query) String() string {
	c := "any"
	if q.Coordinate != nil {
		c = q.Coordinate.String()
	}
	return fmt.Sprintf("type=%q side=%q coordinate=%s", q.Type, q.Side, c)
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return Board{}
	}
	return slices.Clone(b)
}

// At returns the piece standing on c.
func (b Board) At(c Coordinate) (Piece, bool) {
	for _, p := range b {
		if p.Coordinate == c {
			return p, true
		}
	}
	return Piece{}, false
}

func (b Board) Occupied(c Coordinate) bool {
	_, ok := b.At(c)
	return ok
}

// FindAll returns every piece matching q.
func (b Board) FindAll(q Query) Board {
	var found Board
	for _, p := range b {
		if q.matches(p) {
			found = append(found, p)
		}
	}
	return found
}

// Find returns the single piece matching q. More than one match means the
// board is corrupted and Find panics with ErrAmbiguousLookup.
func (b Board) Find(q Query) (Piece, bool) {
	found := b.FindAll(q)
	switch len(found) {
	case 0:
		return Piece{}, false
	case 1:
		return found[0], true
	}
	panic(fmt.Errorf("%w: %s matched %d pieces", ErrAmbiguousLookup, q, len(found)))
}

func (b Board) King(side PieceSide) (Piece, bool) {
	return b.Find(Query{Type: King, Side: side})
}

// IsAttacked reports whether any piece of attacker can reach c.
func (b Board) IsAttacked(c Coordinate, attacker PieceSide, lastMove *LastMove) bool {
	for _, p := range b {
		if p.Side != attacker {
			continue
		}
		for _, to := range p.AllPossibleMoves(b, lastMove, Reachable) {
			if to == c {
				return true
			}
		}
	}
	return false
}

// HasLegalMove reports whether side has at least one move that does not leave
// its King attacked.
func (b Board) HasLegalMove(side PieceSide, lastMove *LastMove) bool {
	for _, p := range b {
		if p.Side == side && len(p.AllPossibleMoves(b, lastMove, Legal)) > 0 {
			return true
		}
	}
	return false
}

func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.Q, b.Q); c != 0 {
		return c
	}
	if c := cmp.Compare(a.R, b.R); c != 0 {
		return c
	}
	return cmp.Compare(a.S, b.S)
}

// Sorted returns a copy ordered by coordinate, the canonical order used to
// compare positions.
func (b Board) Sorted() Board {
	sorted := b.Clone()
	slices.SortFunc(sorted, func(x, y Piece) int {
		return compareCoordinates(x.Coordinate, y.Coordinate)
	})
	return sorted
}

// Equal reports whether both boards hold the same pieces, ignoring order.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	return slices.Equal(b.Sorted(), o.Sorted())
}

// InitialBoard returns the standard starting layout. Black is white mirrored
// across the horizontal axis.
func InitialBoard() Board {
	whites := Board{
		{Pawn, White, Coordinate{-4, 5, -1}},
		{Pawn, White, Coordinate{-3, 4, -1}},
		{Pawn, White, Coordinate{-2, 3, -1}},
		{Pawn, White, Coordinate{-1, 2, -1}},
		{Pawn, White, Coordinate{0, 1, -1}},
		{Pawn, White, Coordinate{1, 1, -2}},
		{Pawn, White, Coordinate{2, 1, -3}},
		{Pawn, White, Coordinate{3, 1, -4}},
		{Pawn, White, Coordinate{4, 1, -5}},
		{Bishop, White, Coordinate{0, 5, -5}},
		{Bishop, White, Coordinate{0, 4, -4}},
		{Bishop, White, Coordinate{0, 3, -3}},
		{Knight, White, Coordinate{-2, 5, -3}},
		{Knight, White, Coordinate{2, 3, -5}},
		{Rook, White, Coordinate{-3, 5, -2}},
		{Rook, White, Coordinate{3, 2, -5}},
		{King, White, Coordinate{-1, 5, -4}},
		{Queen, White, Coordinate{1, 4, -5}},
	}
	board := make(Board, 0, 2*len(whites))
	board = append(board, whites...)
	for _, p := range whites {
		p.Side = Black
		p.Coordinate = p.Coordinate.HorizontalReflection()
		board = append(board, p)
	}
	return board
}

// String draws the board one rank per line, top rank first. White pieces are
// upper case, black lower case, empty cells '.'.
func (b Board) String() string {
	var sb strings.Builder
	rows := 2*SideLength - 1
	for row := rows; row >= 1; row-- {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < len(columnNotation); col++ {
			c, err := ParseNotation(fmt.Sprintf("%c%d", columnNotation[col], row))
			switch {
			case err != nil:
				sb.WriteString("  ")
			case b.Occupied(c):
				p, _ := b.At(c)
				sb.WriteString(" " + p.letter())
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   ")
	for col := 0; col < len(columnNotation); col++ {
		sb.WriteString(" " + string(columnNotation[col]))
	}
	sb.WriteByte('\n')
	return sb.String()
}
