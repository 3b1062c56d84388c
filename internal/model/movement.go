package model

import "math"

// Unbounded is the range of sliding movements; rays are capped by the board size.
const Unbounded = math.MaxInt32

// PossibleMovement is one ray a piece may travel along, up to MaxRange steps.
type PossibleMovement struct {
	Vector   Coordinate
	MaxRange int
}

// movementTables are authored for white; black mirrors them at generation time.
// Pawns are not listed because their moves are not rays.
var movementTables = map[PieceType][]PossibleMovement{
	Bishop: {
		{DiagonalVectors[1], Unbounded},
		{DiagonalVectors[0], Unbounded},
		{DiagonalVectors[5], Unbounded},
		{DiagonalVectors[4], Unbounded},
		{DiagonalVectors[3], Unbounded},
		{DiagonalVectors[2], Unbounded},
	},
	King: {
		{DirectionVectors[2], 1},
		{DirectionVectors[1], 1},
		{DirectionVectors[0], 1},
		{DirectionVectors[5], 1},
		{DirectionVectors[4], 1},
		{DirectionVectors[3], 1},
		{DiagonalVectors[1], 1},
		{DiagonalVectors[0], 1},
		{DiagonalVectors[5], 1},
		{DiagonalVectors[4], 1},
		{DiagonalVectors[3], 1},
		{DiagonalVectors[2], 1},
	},
	Knight: {
		{Coordinate{3, -2, -1}, 1},
		{Coordinate{3, -1, -2}, 1},
		{Coordinate{2, 1, -3}, 1},
		{Coordinate{1, 2, -3}, 1},
		{Coordinate{-2, 3, -1}, 1},
		{Coordinate{-1, 3, -2}, 1},
		{Coordinate{-3, 1, 2}, 1},
		{Coordinate{-3, 2, 1}, 1},
		{Coordinate{-1, -2, 3}, 1},
		{Coordinate{-2, -1, 3}, 1},
		{Coordinate{1, -3, 2}, 1},
		{Coordinate{2, -3, 1}, 1},
	},
	Queen: {
		{DirectionVectors[2], Unbounded},
		{DirectionVectors[1], Unbounded},
		{DirectionVectors[0], Unbounded},
		{DirectionVectors[5], Unbounded},
		{DirectionVectors[4], Unbounded},
		{DirectionVectors[3], Unbounded},
		{DiagonalVectors[1], Unbounded},
		{DiagonalVectors[0], Unbounded},
		{DiagonalVectors[5], Unbounded},
		{DiagonalVectors[4], Unbounded},
		{DiagonalVectors[3], Unbounded},
		{DiagonalVectors[2], Unbounded},
	},
	Rook: {
		{DirectionVectors[2], Unbounded},
		{DirectionVectors[1], Unbounded},
		{DirectionVectors[0], Unbounded},
		{DirectionVectors[5], Unbounded},
		{DirectionVectors[4], Unbounded},
		{DirectionVectors[3], Unbounded},
	},
}
