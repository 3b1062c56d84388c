package service

import "github.com/benbeisheim/hexchess-backend/internal/model"

// Players holds the ids seated on each side. An empty id is a free seat.
type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// SideOf returns the side playerID is seated on.
func (p Players) SideOf(playerID string) (model.PieceSide, bool) {
	switch {
	case playerID == "":
		return "", false
	case p.White == playerID:
		return model.White, true
	case p.Black == playerID:
		return model.Black, true
	}
	return "", false
}

func (p Players) Full() bool {
	return p.White != "" && p.Black != ""
}

// seat gives playerID the first free seat, white first. A player already
// seated keeps their side.
func (p *Players) seat(playerID string) (model.PieceSide, error) {
	if side, ok := p.SideOf(playerID); ok {
		return side, nil
	}
	if p.White == "" {
		p.White = playerID
		return model.White, nil
	}
	if p.Black == "" {
		p.Black = playerID
		return model.Black, nil
	}
	return "", ErrGameFull
}
