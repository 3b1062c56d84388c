package ws

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/benbeisheim/hexchess-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeSurrender MessageType = "surrender"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into a message of type t.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	return Message{Type: t, Payload: data}, nil
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// Cell is a board coordinate on the wire. It decodes from a cell label such as
// "e4" or from a cube coordinate object {"q":-1,"r":2,"s":-1}.
type Cell model.Coordinate

func (c Cell) Coordinate() model.Coordinate {
	return model.Coordinate(c)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		coord, err := model.ParseNotation(strings.TrimSpace(label))
		if err != nil {
			return err
		}
		*c = Cell(coord)
		return nil
	}
	var coord model.Coordinate
	if err := json.Unmarshal(data, &coord); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidCoordinate, err)
	}
	if !coord.OnBoard() {
		return fmt.Errorf("%w: %+v is off the board", model.ErrInvalidCoordinate, coord)
	}
	*c = Cell(coord)
	return nil
}

// MovePayload asks to play the piece on From to To. Promotion names the new
// piece type when a pawn reaches its last cell.
type MovePayload struct {
	From      *Cell  `json:"from"`
	To        *Cell  `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// Command validates the payload and returns its parts.
func (m MovePayload) Command() (from, to model.Coordinate, promotion model.PieceType, err error) {
	if m.From == nil || m.To == nil {
		return from, to, "", fmt.Errorf("%w: from and to are required", model.ErrInvalidCoordinate)
	}
	if strings.TrimSpace(m.Promotion) != "" {
		if promotion, err = model.ParsePieceType(m.Promotion); err != nil {
			return from, to, "", err
		}
	}
	return m.From.Coordinate(), m.To.Coordinate(), promotion, nil
}
