package model

// MoveHistory is the notation of every ply, split by side. White[i] and
// Black[i] form move number i+1.
type MoveHistory struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// plyDiff describes one ply recovered from two consecutive positions.
type plyDiff struct {
	moved    Piece
	placed   Piece
	captured *Piece
}

// plySide is the side that played ply i, counting plies from 1.
func plySide(i int) PieceSide {
	if i%2 == 1 {
		return White
	}
	return Black
}

// ply returns the positions before and after ply i.
func (g *Game) ply(i int) (Board, Board) {
	previous := g.history[i-1]
	if i < len(g.history) {
		return previous, g.history[i]
	}
	return previous, g.pieces
}

// missing returns the first piece of side in from that has no identical piece in to.
func missing(from, to Board, side PieceSide) (Piece, bool) {
	for _, p := range from {
		if p.Side != side {
			continue
		}
		if _, ok := to.Find(Query{Type: p.Type, Side: side, Coordinate: &p.Coordinate}); !ok {
			return p, true
		}
	}
	return Piece{}, false
}

func diffPly(previous, current Board, side PieceSide) (plyDiff, bool) {
	moved, ok := missing(previous, current, side)
	if !ok {
		return plyDiff{}, false
	}
	placed, ok := missing(current, previous, side)
	if !ok {
		return plyDiff{}, false
	}
	d := plyDiff{moved: moved, placed: placed}
	if captured, ok := missing(previous, current, side.Opposite()); ok {
		d.captured = &captured
	}
	return d, true
}

// LastMoveAt returns the origin and destination of ply moveIndex, counting
// from 1. It is nil outside the recorded plies.
func (g *Game) LastMoveAt(moveIndex int) *LastMove {
	if moveIndex <= 0 || moveIndex > len(g.history) {
		return nil
	}
	previous, current := g.ply(moveIndex)
	d, ok := diffPly(previous, current, plySide(moveIndex))
	if !ok {
		return nil
	}
	return &LastMove{From: d.moved.Coordinate, To: d.placed.Coordinate}
}

// MoveHistory splits the notation of every ply by side.
func (g *Game) MoveHistory() MoveHistory {
	h := MoveHistory{White: []string{}, Black: []string{}}
	for _, p := range g.Plies() {
		if p.Side == White {
			h.White = append(h.White, p.Notation)
		} else {
			h.Black = append(h.Black, p.Notation)
		}
	}
	return h
}

func (g *Game) moveNotation(i int, previous, current Board, d plyDiff) string {
	from, to := d.moved.Coordinate, d.placed.Coordinate
	n := d.moved.Type.Notation()

	if d.moved.Type != Pawn {
		lastMove := g.LastMoveAt(i - 1)
		for _, other := range previous.FindAll(Query{Type: d.moved.Type, Side: d.moved.Side}) {
			if other == d.moved || !other.IsMoveValid(to, previous, lastMove) {
				continue
			}
			switch {
			case other.Coordinate.ColumnNotation() != from.ColumnNotation():
				n += from.ColumnNotation()
			case other.Coordinate.RowNotation() != from.RowNotation():
				n += from.RowNotation()
			default:
				n += from.Notation()
			}
			break
		}
	}

	if d.captured != nil {
		if d.moved.Type == Pawn {
			n += from.ColumnNotation()
		}
		n += "x"
	}
	n += to.Notation()
	if d.moved.Type != d.placed.Type {
		n += "=" + d.placed.Type.Notation()
	}

	lastMove := &LastMove{From: from, To: to}
	if king, ok := current.King(d.moved.Side.Opposite()); ok && king.IsCheck(current, lastMove) {
		if king.IsCheckMate(current, lastMove) {
			n += "#"
		} else {
			n += "+"
		}
	}
	return n
}

// CapturedPieceTypes lists the types of side's pieces taken by the opponent,
// in the order they were taken.
func (g *Game) CapturedPieceTypes(side PieceSide) []PieceType {
	captured := []PieceType{}
	start := 2
	if side == Black {
		start = 1
	}
	for i := start; i <= len(g.history); i += 2 {
		previous, current := g.ply(i)
		before := countTypes(previous, side)
		after := countTypes(current, side)
		for _, t := range PieceTypes {
			if before[t] != after[t] {
				captured = append(captured, t)
				break
			}
		}
	}
	return captured
}

func countTypes(b Board, side PieceSide) map[PieceType]int {
	counts := make(map[PieceType]int)
	for _, p := range b {
		if p.Side == side {
			counts[p.Type]++
		}
	}
	return counts
}
