package model

// Ply is one recorded half-move, recovered from the snapshots around it.
type Ply struct {
	Side      PieceSide  `json:"side"`
	Piece     PieceType  `json:"piece"`
	From      Coordinate `json:"from"`
	To        Coordinate `json:"to"`
	Captured  *Piece     `json:"capturedPiece,omitempty"`
	Promotion PieceType  `json:"promotion,omitempty"`
	Notation  string     `json:"notation"`
}

// Move pairs a white ply with black's reply. Black is nil while the reply is
// pending.
type Move struct {
	Number   int  `json:"number"`
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

// Plies returns every recorded ply in order. A ply that cannot be recovered
// from its snapshots only carries its side and the notation "--".
func (g *Game) Plies() []Ply {
	plies := make([]Ply, 0, len(g.history))
	for i := 1; i <= len(g.history); i++ {
		side := plySide(i)
		previous, current := g.ply(i)
		d, ok := diffPly(previous, current, side)
		if !ok {
			plies = append(plies, Ply{Side: side, Notation: "--"})
			continue
		}
		p := Ply{
			Side:     side,
			Piece:    d.moved.Type,
			From:     d.moved.Coordinate,
			To:       d.placed.Coordinate,
			Captured: d.captured,
			Notation: g.moveNotation(i, previous, current, d),
		}
		if d.placed.Type != d.moved.Type {
			p.Promotion = d.placed.Type
		}
		plies = append(plies, p)
	}
	return plies
}

// Moves groups Plies by move number.
func (g *Game) Moves() []Move {
	plies := g.Plies()
	moves := make([]Move, 0, (len(plies)+1)/2)
	for i := 0; i < len(plies); i += 2 {
		m := Move{Number: i/2 + 1, WhitePly: &plies[i]}
		if i+1 < len(plies) {
			m.BlackPly = &plies[i+1]
		}
		moves = append(moves, m)
	}
	return moves
}
