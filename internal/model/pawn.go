package model

// pawnStartCells are white's pawn cells in the initial layout; a pawn standing on
// one of them (mirrored for black) may advance two cells.
var pawnStartCells = []Coordinate{
	{-4, 5, -1},
	{-3, 4, -1},
	{-2, 3, -1},
	{-1, 2, -1},
	{0, 1, -1},
	{1, 1, -2},
	{2, 1, -3},
	{3, 1, -4},
	{4, 1, -5},
}

// PromotionCells returns the far edge of the board for side: the last cell of
// every column.
func PromotionCells(side PieceSide) []Coordinate {
	top := Coordinate{Q: 0, R: -(SideLength - 1), S: SideLength - 1}
	cells := make([]Coordinate, 0, 2*(SideLength-1)+1)
	for _, diagonal := range []Coordinate{DirectionVectors[4], DirectionVectors[0]} {
		c := top
		for i := 0; i < SideLength-1; i++ {
			c = c.Add(diagonal)
			cells = append(cells, c)
		}
	}
	cells = append(cells, top)
	if side == Black {
		for i := range cells {
			cells[i] = cells[i].HorizontalReflection()
		}
	}
	return cells
}

func isPromotionCell(side PieceSide, c Coordinate) bool {
	for _, cell := range PromotionCells(side) {
		if cell == c {
			return true
		}
	}
	return false
}

func (p Piece) forward() Coordinate {
	return p.reflectIfBlack(DirectionVectors[2])
}

func (p Piece) onStartCell() bool {
	for _, c := range pawnStartCells {
		if p.reflectIfBlack(c) == p.Coordinate {
			return true
		}
	}
	return false
}

func (p Piece) pawnMoves(board Board, lastMove *LastMove, filter Filter) []Coordinate {
	var moves []Coordinate
	if c, ok := p.forward1Move(board, lastMove, filter); ok {
		moves = append(moves, c)
	}
	if c, ok := p.forward2Move(board, lastMove, filter); ok {
		moves = append(moves, c)
	}
	moves = append(moves, p.captureMoves(board, lastMove, filter)...)
	if c, ok := p.enPassantMove(board, lastMove, filter); ok {
		moves = append(moves, c)
	}
	return moves
}

func (p Piece) forward1Move(board Board, lastMove *LastMove, filter Filter) (Coordinate, bool) {
	forward := p.Coordinate.Add(p.forward())
	if !forward.OnBoard() || board.Occupied(forward) {
		return Coordinate{}, false
	}
	if filter == Legal && p.causesSelfCheck(forward, board, lastMove) {
		return Coordinate{}, false
	}
	return forward, true
}

func (p Piece) forward2Move(board Board, lastMove *LastMove, filter Filter) (Coordinate, bool) {
	if !p.onStartCell() {
		return Coordinate{}, false
	}
	forward := p.Coordinate.Add(p.forward())
	forward2 := p.Coordinate.Add(p.forward().Multiply(2))
	if board.Occupied(forward) || board.Occupied(forward2) {
		return Coordinate{}, false
	}
	if filter == Legal && p.causesSelfCheck(forward2, board, lastMove) {
		return Coordinate{}, false
	}
	return forward2, true
}

func (p Piece) captureMoves(board Board, lastMove *LastMove, filter Filter) []Coordinate {
	var moves []Coordinate
	for _, v := range []Coordinate{DirectionVectors[1], DirectionVectors[3]} {
		c := p.Coordinate.Add(p.reflectIfBlack(v))
		occupant, ok := board.At(c)
		if !ok || occupant.Side == p.Side {
			continue
		}
		if filter == Legal && p.causesSelfCheck(c, board, lastMove) {
			continue
		}
		moves = append(moves, c)
	}
	return moves
}

// enPassantMove returns the en passant destination when the previous ply was an
// opposing pawn's two-cell advance that landed side by side with p.
func (p Piece) enPassantMove(board Board, lastMove *LastMove, filter Filter) (Coordinate, bool) {
	if lastMove == nil {
		return Coordinate{}, false
	}
	moved, ok := board.Find(Query{Side: p.Side.Opposite(), Coordinate: &lastMove.To})
	if !ok || moved.Type != Pawn || lastMove.From.Distance(lastMove.To) != 2 {
		return Coordinate{}, false
	}
	for _, v := range []Coordinate{DirectionVectors[0], DirectionVectors[4]} {
		v = p.reflectIfBlack(v)
		if p.Coordinate.Add(v) != lastMove.To {
			continue
		}
		to := p.Coordinate.Add(v.HorizontalReflection())
		if filter == Legal && p.causesSelfCheck(to, board, lastMove) {
			return Coordinate{}, false
		}
		return to, true
	}
	return Coordinate{}, false
}

func (p Piece) isEnPassantDestination(to Coordinate, board Board, lastMove *LastMove) bool {
	c, ok := p.enPassantMove(board, lastMove, Reachable)
	return ok && c == to
}

// enPassantCaptureSquare is the cell of the pawn taken en passant: one step
// behind the destination.
func (p Piece) enPassantCaptureSquare(to Coordinate) Coordinate {
	return to.Add(p.reflectIfBlack(DirectionVectors[5]))
}
