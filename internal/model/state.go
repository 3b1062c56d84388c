package model

import "fmt"

type GameState string

const (
	InProgress               GameState = "inProgress"
	WhiteInCheck             GameState = "whiteInCheck"
	BlackInCheck             GameState = "blackInCheck"
	WhiteWon                 GameState = "whiteWon"
	BlackWon                 GameState = "blackWon"
	WhiteWonBySurrender      GameState = "whiteWonBySurrender"
	BlackWonBySurrender      GameState = "blackWonBySurrender"
	DrawStalemate            GameState = "drawStalemate"
	DrawInsufficientMaterial GameState = "drawInsufficientMaterial"
	DrawThreefoldRepetition  GameState = "drawThreefoldRepetition"
)

var gameStates = []GameState{
	InProgress,
	WhiteInCheck,
	BlackInCheck,
	WhiteWon,
	BlackWon,
	WhiteWonBySurrender,
	BlackWonBySurrender,
	DrawStalemate,
	DrawInsufficientMaterial,
	DrawThreefoldRepetition,
}

// IsEnded is true for every terminal state.
func (s GameState) IsEnded() bool {
	return s != InProgress && s != WhiteInCheck && s != BlackInCheck
}

func ParseGameState(s string) (GameState, error) {
	for _, st := range gameStates {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown state %q", ErrInvalidSnapshot, s)
}

func inCheckState(side PieceSide) GameState {
	if side == White {
		return WhiteInCheck
	}
	return BlackInCheck
}

func wonState(winner PieceSide) GameState {
	if winner == White {
		return WhiteWon
	}
	return BlackWon
}

func wonBySurrenderState(winner PieceSide) GameState {
	if winner == White {
		return WhiteWonBySurrender
	}
	return BlackWonBySurrender
}
