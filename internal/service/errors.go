package service

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrGameFull     = errors.New("game is full")
	ErrNotAPlayer   = errors.New("player not in game")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrNotCreator   = errors.New("only the creator may delete a game")

	ErrAlreadyConnected = errors.New("connection already exists")
)
