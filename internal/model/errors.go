package model

import "errors"

// Errors returned by game operations. They are wrapped with context, so match
// them with errors.Is.
var (
	ErrGameOver            = errors.New("game is over")
	ErrPieceNotFound       = errors.New("no piece at coordinate")
	ErrWrongTurn           = errors.New("not your turn")
	ErrIllegalMove         = errors.New("movement not allowed")
	ErrPromotionRequired   = errors.New("promotion piece type not provided")
	ErrPromotionNotAllowed = errors.New("promotion not allowed")

	// ErrAmbiguousLookup means the piece set is corrupted. It is raised with
	// panic and never returned.
	ErrAmbiguousLookup = errors.New("multiple pieces found")

	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidPieceType    = errors.New("invalid piece type")
	ErrInvalidSnapshot     = errors.New("invalid game snapshot")
	ErrMoveIndexOutOfRange = errors.New("move index out of range")
)
