package model

import (
	"fmt"
	"strings"
)

// LastMove is the origin and destination of the most recent ply. Pawn rules
// read it to detect en passant.
type LastMove struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

// Game is one match: the pieces on the board, whose turn it is and the
// snapshots taken before every ply. A Game is not safe for concurrent use.
type Game struct {
	state    GameState
	sideTurn PieceSide
	lastMove *LastMove
	pieces   Board
	history  []Board
}

func NewGame() *Game {
	return &Game{
		state:    InProgress,
		sideTurn: White,
		pieces:   InitialBoard(),
		history:  []Board{},
	}
}

// FromExistingGame rebuilds a game from its parts. Every argument is copied so
// the caller keeps ownership of what it passed in.
func FromExistingGame(state GameState, sideTurn PieceSide, lastMove *LastMove, pieces Board, history []Board) *Game {
	g := &Game{
		state:    state,
		sideTurn: sideTurn,
		pieces:   pieces.Clone(),
		history:  cloneHistory(history),
	}
	if lastMove != nil {
		lm := *lastMove
		g.lastMove = &lm
	}
	return g
}

// FromPreviousMove rebuilds the game as it stood after moveIndex plies.
// positions[k] is the board after k plies, so positions[0] is the initial
// layout. The state is recomputed; a surrender is not replayed.
func FromPreviousMove(positions []Board, moveIndex int) (*Game, error) {
	if moveIndex < 0 || moveIndex >= len(positions) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrMoveIndexOutOfRange, moveIndex, len(positions))
	}
	g := &Game{
		sideTurn: White,
		pieces:   positions[moveIndex].Clone(),
		history:  cloneHistory(positions[:moveIndex]),
	}
	if moveIndex%2 == 1 {
		g.sideTurn = Black
	}
	g.lastMove = g.LastMoveAt(moveIndex)
	g.state = g.evaluate(g.sideTurn)
	return g, nil
}

func cloneHistory(history []Board) []Board {
	cloned := make([]Board, len(history))
	for i, b := range history {
		cloned[i] = b.Clone()
	}
	return cloned
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) SideTurn() PieceSide {
	return g.sideTurn
}

// LastMove returns a copy of the most recent ply, or nil before the first one.
func (g *Game) LastMove() *LastMove {
	if g.lastMove == nil {
		return nil
	}
	lm := *g.lastMove
	return &lm
}

func (g *Game) Pieces() Board {
	return g.pieces.Clone()
}

func (g *Game) History() []Board {
	return cloneHistory(g.history)
}

func (g *Game) IsEnded() bool {
	return g.state.IsEnded()
}

// PossibleMoves returns the legal destinations of the piece standing on from.
// Once the game has ended no piece may move.
func (g *Game) PossibleMoves(from Coordinate) ([]Coordinate, error) {
	piece, ok := g.pieces.Find(Query{Coordinate: &from})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPieceNotFound, from.Notation())
	}
	if g.IsEnded() {
		return []Coordinate{}, nil
	}
	moves := piece.AllPossibleMoves(g.pieces, g.lastMove, Legal)
	if moves == nil {
		moves = []Coordinate{}
	}
	return moves, nil
}

// MovePiece plays the piece on from to to. promotion must name the new type
// when a pawn reaches its last cell and must be empty otherwise. On error the
// game is left untouched.
func (g *Game) MovePiece(from, to Coordinate, promotion PieceType) error {
	if g.IsEnded() {
		return fmt.Errorf("%w: state is %s", ErrGameOver, g.state)
	}
	piece, ok := g.pieces.Find(Query{Coordinate: &from})
	if !ok {
		return fmt.Errorf("%w: %s", ErrPieceNotFound, from.Notation())
	}
	if piece.Side != g.sideTurn {
		return fmt.Errorf("%w: %s to play, got %s", ErrWrongTurn, g.sideTurn, piece)
	}
	if !piece.IsMoveValid(to, g.pieces, g.lastMove) {
		return fmt.Errorf("%w: %s cannot reach %s", ErrIllegalMove, piece, to)
	}
	promotes := piece.Type == Pawn && isPromotionCell(piece.Side, to)
	switch {
	case promotes && promotion == "":
		return fmt.Errorf("%w: %s reaches %s", ErrPromotionRequired, piece, to.Notation())
	case !promotes && promotion != "":
		return fmt.Errorf("%w: %s to %s cannot promote", ErrPromotionNotAllowed, piece, to.Notation())
	case promotes && (promotion == King || promotion == Pawn):
		return fmt.Errorf("%w: cannot promote to %s", ErrPromotionNotAllowed, promotion)
	case promotes && promotion.Notation() == "":
		return fmt.Errorf("%w: %q", ErrInvalidPieceType, promotion)
	}

	captured := to
	if piece.Type == Pawn && piece.isEnPassantDestination(to, g.pieces, g.lastMove) {
		captured = piece.enPassantCaptureSquare(to)
	}

	g.history = append(g.history, g.pieces.Clone())
	next := make(Board, 0, len(g.pieces))
	for _, p := range g.pieces {
		switch {
		case p == piece:
			p.Coordinate = to
			if promotes {
				p.Type = promotion
			}
		case p.Coordinate == captured:
			continue
		}
		next = append(next, p)
	}
	g.pieces = next
	g.lastMove = &LastMove{From: from, To: to}
	g.state = g.evaluate(g.sideTurn.Opposite())
	g.sideTurn = g.sideTurn.Opposite()
	return nil
}

// Surrender ends the game in favour of side's opponent.
func (g *Game) Surrender(side PieceSide) error {
	if g.IsEnded() {
		return fmt.Errorf("%w: state is %s", ErrGameOver, g.state)
	}
	g.state = wonBySurrenderState(side.Opposite())
	return nil
}

// evaluate computes the state of the game with side about to play.
func (g *Game) evaluate(side PieceSide) GameState {
	king, ok := g.pieces.King(side)
	if ok && king.IsCheck(g.pieces, g.lastMove) {
		if !g.pieces.HasLegalMove(side, g.lastMove) {
			return wonState(side.Opposite())
		}
		return inCheckState(side)
	}
	switch {
	case !g.pieces.HasLegalMove(side, g.lastMove):
		return DrawStalemate
	case g.insufficientMaterial():
		return DrawInsufficientMaterial
	case g.threefoldRepetition():
		return DrawThreefoldRepetition
	}
	return InProgress
}

// insufficientMaterial holds when each side is down to at most two pieces
// and none of them is a pawn, rook or queen.
func (g *Game) insufficientMaterial() bool {
	for _, side := range []PieceSide{White, Black} {
		pieces := g.pieces.FindAll(Query{Side: side})
		if len(pieces) > 2 {
			return false
		}
		for _, p := range pieces {
			if p.Type != King && p.Type != Bishop && p.Type != Knight {
				return false
			}
		}
	}
	return true
}

// threefoldRepetition holds once at least three stored snapshots carry the
// same pieces as the live board.
func (g *Game) threefoldRepetition() bool {
	count := 0
	for _, h := range g.history {
		if h.Equal(g.pieces) {
			count++
		}
	}
	return count >= 3
}

func (g *Game) String() string {
	lm := "none"
	if g.lastMove != nil {
		lm = g.lastMove.From.Notation() + "-" + g.lastMove.To.Notation()
	}
	return fmt.Sprintf("Game(state=%s, sideTurn=%s, lastMove=%s, pieces=%d, plies=%d)\n\n%s",
		g.state, g.sideTurn, lm, len(g.pieces), len(g.history), g.BoardString())
}

// BoardString renders the live board for debugging.
func (g *Game) BoardString() string {
	return strings.TrimRight(g.pieces.String(), "\n") + "\n"
}
