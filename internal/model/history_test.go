package model

import (
	"slices"
	"testing"
)

func TestMoveHistory(t *testing.T) {
	g := NewGame()
	if h := g.MoveHistory(); len(h.White) != 0 || len(h.Black) != 0 {
		t.Fatalf("expected empty history, got %+v", h)
	}

	play(t, g, openingPlies...)
	h := g.MoveHistory()
	if want := []string{"b2", "e6", "Bc6+", "Ndf4"}; !slices.Equal(h.White, want) {
		t.Fatalf("white: expected %v, got %v", want, h.White)
	}
	if want := []string{"f6", "fxe5", "Nxc6"}; !slices.Equal(h.Black, want) {
		t.Fatalf("black: expected %v, got %v", want, h.Black)
	}
}

func TestCapturedPieceTypes(t *testing.T) {
	g := NewGame()
	play(t, g, openingPlies...)

	if got := g.CapturedPieceTypes(White); !slices.Equal(got, []PieceType{Pawn, Bishop}) {
		t.Fatalf("white: unexpected %v", got)
	}
	if got := g.CapturedPieceTypes(Black); len(got) != 0 {
		t.Fatalf("black: expected none, got %v", got)
	}
}

func TestLastMoveAt(t *testing.T) {
	g := NewGame()
	play(t, g, openingPlies...)

	tests := []struct {
		index    int
		from, to string
	}{
		{1, "b1", "b2"},
		{4, "f6", "e5"},
		{7, "d1", "f4"},
	}
	for _, tt := range tests {
		lm := g.LastMoveAt(tt.index)
		if lm == nil || lm.From != cell(t, tt.from) || lm.To != cell(t, tt.to) {
			t.Fatalf("ply %d: expected %s-%s, got %+v", tt.index, tt.from, tt.to, lm)
		}
	}
	for _, bad := range []int{0, -3, 8} {
		if lm := g.LastMoveAt(bad); lm != nil {
			t.Fatalf("ply %d: expected nil, got %+v", bad, lm)
		}
	}
	if *g.LastMoveAt(7) != *g.LastMove() {
		t.Fatalf("the newest ply should match LastMove")
	}
}

func TestPliesAndMoves(t *testing.T) {
	g := NewGame()
	play(t, g, openingPlies...)

	plies := g.Plies()
	if len(plies) != len(openingPlies) {
		t.Fatalf("expected %d plies, got %d", len(openingPlies), len(plies))
	}
	ep := plies[3]
	if ep.Side != Black || ep.Piece != Pawn || ep.From != cell(t, "f6") || ep.To != cell(t, "e5") {
		t.Fatalf("unexpected en passant ply %+v", ep)
	}
	if ep.Captured == nil || ep.Captured.Type != Pawn || ep.Captured.Coordinate != cell(t, "e6") {
		t.Fatalf("expected the pawn on e6 to be captured, got %+v", ep.Captured)
	}
	if plies[0].Captured != nil || plies[0].Promotion != "" {
		t.Fatalf("first ply should be a quiet move, got %+v", plies[0])
	}

	moves := g.Moves()
	if len(moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(moves))
	}
	last := moves[3]
	if last.Number != 4 || last.WhitePly.Notation != "Ndf4" || last.BlackPly != nil {
		t.Fatalf("unexpected last move %+v", last)
	}
	if moves[1].BlackPly.Notation != "fxe5" {
		t.Fatalf("unexpected second move %+v", moves[1])
	}
}

func TestPromotionPly(t *testing.T) {
	board := Board{
		NewPiece(King, White, cell(t, "b1")),
		NewPiece(King, Black, cell(t, "e10")),
		NewPiece(Pawn, White, cell(t, "f10")),
	}
	g := FromExistingGame(InProgress, White, nil, board, nil)
	play(t, g, ply{from: "f10", to: "f11", promotion: Rook})

	p := g.Plies()[0]
	if p.Piece != Pawn || p.Promotion != Rook {
		t.Fatalf("unexpected promotion ply %+v", p)
	}
}
